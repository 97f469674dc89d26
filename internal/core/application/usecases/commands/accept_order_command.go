package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a shipper taking responsibility for an
// order. The shipper is recorded once and the order moves to Shipping.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	shipperID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a shipper to accept an order.
func NewAcceptOrderCommand(orderID, shipperID kernel.UUID) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setShipperID(shipperID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the order being accepted.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShipperID returns the accepting shipper.
func (c AcceptOrderCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	c.shipperID = shipperID
	return nil
}
