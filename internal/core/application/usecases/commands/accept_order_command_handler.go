package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

// AcceptOrderCommandHandler moves an order into the Shipping status on
// behalf of a shipper.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for shipper acceptance.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the shipper on the order and starts the delivery.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.AcceptByShipper(cmd.ShipperID(), time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
