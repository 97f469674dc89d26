package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

// DeliverOrderCommandHandler completes deliveries. Orders accepted before
// the shipper assignment existed carry no shipper yet; delivery backfills
// it from the command.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeliverOrderCommandHandler creates a handler for delivery completion.
func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the order delivered and stamps the delivery time.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) (*order.Order, error) {
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

	if err = aggregate.MarkDelivered(cmd.ShipperID(), time.Now()); err != nil {
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
