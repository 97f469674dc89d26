package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

// ConfirmPaymentFailureCommandHandler records declined or aborted online
// payments. The order is cancelled and its payment references cleared; the
// cart is deliberately kept so the buyer can retry the checkout. Orders
// already settled or cancelled are left untouched.
type ConfirmPaymentFailureCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmPaymentFailureCommandHandler creates a handler for failed
// payment callbacks.
func NewConfirmPaymentFailureCommandHandler(uowFactory OrderUoWFactory) ConfirmPaymentFailureCommandHandler {
	return ConfirmPaymentFailureCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the order after a failed payment and returns it. A repeat
// callback for an already-cancelled or already-settled order is a no-op.
func (h ConfirmPaymentFailureCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentFailureCommand) (*order.Order, error) {
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

	if aggregate.Status().IsTerminal() || aggregate.PaymentStatus().IsSettled() {
		return aggregate, nil
	}

	if err = aggregate.MarkPaymentFailed(time.Now()); err != nil {
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
