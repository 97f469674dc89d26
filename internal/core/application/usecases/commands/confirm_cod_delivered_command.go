package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrConfirmCODDeliveredCommandIsNotConstructed = errors.New(
	"ConfirmCODDeliveredCommand must be created via NewConfirmCODDeliveredCommand constructor",
)

// ConfirmCODDeliveredCommand represents a shipper confirming that a
// cash-on-delivery order was handed over and the cash collected.
type ConfirmCODDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmCODDeliveredCommand creates a command to confirm a COD handover.
func NewConfirmCODDeliveredCommand(orderID kernel.UUID) (ConfirmCODDeliveredCommand, error) {
	cmd := ConfirmCODDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ConfirmCODDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmCODDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCODDeliveredCommandIsNotConstructed)
}

// OrderID returns the COD order being confirmed.
func (c ConfirmCODDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ConfirmCODDeliveredCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
