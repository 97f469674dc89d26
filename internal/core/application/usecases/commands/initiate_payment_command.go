package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrInitiatePaymentCommandIsNotConstructed = errors.New(
	"InitiatePaymentCommand must be created via NewInitiatePaymentCommand constructor",
)

// InitiatePaymentCommand represents a request to start the online payment
// flow for an existing order by building the gateway redirect URL.
type InitiatePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	clientIP string

	guard guard.ConstructorGuard
}

// NewInitiatePaymentCommand creates a command to start online payment for
// the given order. The client IP is forwarded to the gateway as part of the
// signed request.
func NewInitiatePaymentCommand(orderID kernel.UUID, clientIP string) (InitiatePaymentCommand, error) {
	cmd := InitiatePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return InitiatePaymentCommand{}, err
	}
	cmd.clientIP = clientIP

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c InitiatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrInitiatePaymentCommandIsNotConstructed)
}

// OrderID returns the order to pay for.
func (c InitiatePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientIP returns the buyer's IP address, possibly empty.
func (c InitiatePaymentCommand) ClientIP() string {
	return c.clientIP
}

func (c *InitiatePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
