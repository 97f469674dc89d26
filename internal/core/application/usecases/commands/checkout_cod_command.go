package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCheckoutCODCommandIsNotConstructed = errors.New(
	"CheckoutCODCommand must be created via NewCheckoutCODCommand constructor",
)

// CheckoutCODCommand represents a cash-on-delivery checkout: the cart is
// snapshot into an order, stock is committed immediately, and the cart is
// cleared, all in one transaction. Recipient details are mandatory because
// the shipper needs them right away.
type CheckoutCODCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	userID    string
	sessionID string

	recipientName    string
	recipientPhone   string
	recipientAddress string
	recipientNotes   string

	guard guard.ConstructorGuard
}

// NewCheckoutCODCommand creates a command to check out a cart with cash on
// delivery. Requires a valid order id, at least one owner identity, and a
// complete recipient (name, phone, address).
func NewCheckoutCODCommand(
	orderID kernel.UUID,
	userID, sessionID string,
	recipientName, recipientPhone, recipientAddress, recipientNotes string,
) (CheckoutCODCommand, error) {
	cmd := CheckoutCODCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwner(userID, sessionID),
		cmd.setRecipient(recipientName, recipientPhone, recipientAddress, recipientNotes),
	); err != nil {
		return CheckoutCODCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCODCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCODCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the order being created.
func (c CheckoutCODCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the registered owner, empty for anonymous checkouts.
func (c CheckoutCODCommand) UserID() string {
	return c.userID
}

// SessionID returns the anonymous session owner, empty for logged-in checkouts.
func (c CheckoutCODCommand) SessionID() string {
	return c.sessionID
}

// CartOwnerIdentity returns the identity whose cart is being checked out.
// A session cart takes precedence so a user who logs in mid-session keeps
// the items they collected anonymously.
func (c CheckoutCODCommand) CartOwnerIdentity() string {
	if c.sessionID != "" {
		return c.sessionID
	}
	return c.userID
}

// RecipientName returns the delivery recipient's name.
func (c CheckoutCODCommand) RecipientName() string {
	return c.recipientName
}

// RecipientPhone returns the delivery contact phone.
func (c CheckoutCODCommand) RecipientPhone() string {
	return c.recipientPhone
}

// RecipientAddress returns the delivery address.
func (c CheckoutCODCommand) RecipientAddress() string {
	return c.recipientAddress
}

// RecipientNotes returns free-form delivery notes.
func (c CheckoutCODCommand) RecipientNotes() string {
	return c.recipientNotes
}

func (c *CheckoutCODCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCODCommand) setOwner(userID, sessionID string) error {
	if userID == "" && sessionID == "" {
		return ErrOwnerIdentityIsRequired
	}

	c.userID = userID
	c.sessionID = sessionID
	return nil
}

func (c *CheckoutCODCommand) setRecipient(name, phone, address, notes string) error {
	var errsJoined []error
	if name == "" {
		errsJoined = append(errsJoined, errs.NewValueIsRequiredError("recipientName"))
	}
	if phone == "" {
		errsJoined = append(errsJoined, errs.NewValueIsRequiredError("recipientPhone"))
	}
	if address == "" {
		errsJoined = append(errsJoined, errs.NewValueIsRequiredError("recipientAddress"))
	}
	if len(errsJoined) > 0 {
		return errors.Join(errsJoined...)
	}

	c.recipientName = name
	c.recipientPhone = phone
	c.recipientAddress = address
	c.recipientNotes = notes
	return nil
}
