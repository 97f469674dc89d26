package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrCheckoutOnlineCommandIsNotConstructed = errors.New(
		"CheckoutOnlineCommand must be created via NewCheckoutOnlineCommand constructor",
	)

	// ErrOwnerIdentityIsRequired indicates that neither a user id nor a
	// session id was supplied for a checkout.
	ErrOwnerIdentityIsRequired = errors.New("a user id or session id is required")
)

// CheckoutOnlineCommand represents a request to create an order from the
// owner's cart with online payment. The order starts with payment pending;
// stock is not touched and the cart is kept until the gateway confirms.
//
// Recipient details may be left blank here and completed before delivery,
// the payment flow does not depend on them.
//
// Example:
//
//	cmd, err := NewCheckoutOnlineCommand(kernel.NewUUID(), "", "sess_1",
//	    "Nguyen Van A", "0900000000", "12 Ly Thuong Kiet", "")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutOnlineCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CheckoutOnlineCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	userID    string
	sessionID string

	recipientName    string
	recipientPhone   string
	recipientAddress string
	recipientNotes   string

	guard guard.ConstructorGuard
}

// NewCheckoutOnlineCommand creates a command to check out a cart with online
// payment. Requires a valid order id and at least one owner identity.
func NewCheckoutOnlineCommand(
	orderID kernel.UUID,
	userID, sessionID string,
	recipientName, recipientPhone, recipientAddress, recipientNotes string,
) (CheckoutOnlineCommand, error) {
	cmd := CheckoutOnlineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwner(userID, sessionID),
	); err != nil {
		return CheckoutOnlineCommand{}, err
	}

	cmd.recipientName = recipientName
	cmd.recipientPhone = recipientPhone
	cmd.recipientAddress = recipientAddress
	cmd.recipientNotes = recipientNotes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutOnlineCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutOnlineCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the order being created.
func (c CheckoutOnlineCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the registered owner, empty for anonymous checkouts.
func (c CheckoutOnlineCommand) UserID() string {
	return c.userID
}

// SessionID returns the anonymous session owner, empty for logged-in checkouts.
func (c CheckoutOnlineCommand) SessionID() string {
	return c.sessionID
}

// CartOwnerIdentity returns the identity whose cart is being checked out.
// A session cart takes precedence so a user who logs in mid-session keeps
// the items they collected anonymously.
func (c CheckoutOnlineCommand) CartOwnerIdentity() string {
	if c.sessionID != "" {
		return c.sessionID
	}
	return c.userID
}

// RecipientName returns the delivery recipient's name, possibly blank.
func (c CheckoutOnlineCommand) RecipientName() string {
	return c.recipientName
}

// RecipientPhone returns the delivery contact phone, possibly blank.
func (c CheckoutOnlineCommand) RecipientPhone() string {
	return c.recipientPhone
}

// RecipientAddress returns the delivery address, possibly blank.
func (c CheckoutOnlineCommand) RecipientAddress() string {
	return c.recipientAddress
}

// RecipientNotes returns free-form delivery notes.
func (c CheckoutOnlineCommand) RecipientNotes() string {
	return c.recipientNotes
}

func (c *CheckoutOnlineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutOnlineCommand) setOwner(userID, sessionID string) error {
	if userID == "" && sessionID == "" {
		return ErrOwnerIdentityIsRequired
	}

	c.userID = userID
	c.sessionID = sessionID
	return nil
}
