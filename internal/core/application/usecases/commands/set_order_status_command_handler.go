package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

// SetOrderStatusCommandHandler applies administrative status overrides.
type SetOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetOrderStatusCommandHandler creates a handler for admin status
// overrides.
func NewSetOrderStatusCommandHandler(uowFactory OrderUoWFactory) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle forces the order into the commanded status and returns it.
func (h SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) (*order.Order, error) {
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

	if err = aggregate.OverrideStatus(cmd.Status(), time.Now()); err != nil {
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
