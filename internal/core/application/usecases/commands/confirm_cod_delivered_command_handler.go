package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

// ConfirmCODDeliveredCommandHandler closes out cash-on-delivery orders
// once the shipper reports the handover. Only COD orders in Shipping can
// be confirmed this way.
type ConfirmCODDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmCODDeliveredCommandHandler creates a handler for COD handover
// confirmations.
func NewConfirmCODDeliveredCommandHandler(uowFactory OrderUoWFactory) ConfirmCODDeliveredCommandHandler {
	return ConfirmCODDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the COD order delivered and returns it.
func (h ConfirmCODDeliveredCommandHandler) Handle(ctx context.Context, cmd ConfirmCODDeliveredCommand) (*order.Order, error) {
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

	if err = aggregate.ConfirmCODDelivered(time.Now()); err != nil {
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
