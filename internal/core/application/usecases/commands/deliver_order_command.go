package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents a shipper completing a delivery.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	shipperID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to mark an order delivered by
// the given shipper.
func NewDeliverOrderCommand(orderID, shipperID kernel.UUID) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setShipperID(shipperID),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the order being delivered.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShipperID returns the delivering shipper.
func (c DeliverOrderCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

func (c *DeliverOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeliverOrderCommand) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	c.shipperID = shipperID
	return nil
}
