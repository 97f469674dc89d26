package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrConfirmPaymentFailureCommandIsNotConstructed = errors.New(
	"ConfirmPaymentFailureCommand must be created via NewConfirmPaymentFailureCommand constructor",
)

// ConfirmPaymentFailureCommand represents a verified declined or aborted
// payment callback from the gateway.
type ConfirmPaymentFailureCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmPaymentFailureCommand creates a command to record a failed
// online payment for the given order.
func NewConfirmPaymentFailureCommand(orderID kernel.UUID) (ConfirmPaymentFailureCommand, error) {
	cmd := ConfirmPaymentFailureCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ConfirmPaymentFailureCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentFailureCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentFailureCommandIsNotConstructed)
}

// OrderID returns the order whose payment failed.
func (c ConfirmPaymentFailureCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ConfirmPaymentFailureCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
