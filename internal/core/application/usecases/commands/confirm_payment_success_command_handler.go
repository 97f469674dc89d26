package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// ErrPaymentAmountMismatch indicates that the gateway reported an amount
// different from the order total. The callback is rejected without touching
// the order.
var ErrPaymentAmountMismatch = errors.New("paid amount does not match order total")

// ConfirmPaymentSuccessCommandHandler settles online payments. It is safe
// to call more than once for the same order: the store-level claim lets
// exactly one caller perform the transition, and every later caller gets
// the already-settled order back unchanged.
//
// The winning caller also commits stock for every line item and clears the
// originating cart, all inside the same transaction as the claim.
type ConfirmPaymentSuccessCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewConfirmPaymentSuccessCommandHandler creates a handler for successful
// payment callbacks.
func NewConfirmPaymentSuccessCommandHandler(uowFactory CheckoutUoWFactory) ConfirmPaymentSuccessCommandHandler {
	return ConfirmPaymentSuccessCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes a verified successful callback and returns the settled
// order. Duplicate confirmations are a no-op; a stock shortfall on the
// winning path rolls everything back including the claim.
func (h ConfirmPaymentSuccessCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentSuccessCommand) (*order.Order, error) {
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

	if aggregate.PaymentStatus().IsSettled() {
		return aggregate, nil
	}
	if aggregate.PaymentMethod() != order.PaymentOnline {
		return nil, errs.NewInvalidStateError("confirm payment", aggregate.PaymentMethod().String())
	}
	if aggregate.Total() != cmd.Amount() {
		return nil, ErrPaymentAmountMismatch
	}

	claimed, err := orderRepo.ClaimPayment(ctx, cmd.OrderID(), cmd.TransactionID(), cmd.PaidAt())
	if err != nil {
		return nil, err
	}

	if !claimed {
		// Lost the race. Reload and hand back whatever the winner left.
		settled, err := orderRepo.Get(ctx, cmd.OrderID())
		if err != nil {
			return nil, err
		}
		if settled.PaymentStatus().IsSettled() {
			return settled, nil
		}
		return nil, errs.NewInvalidStateError("confirm payment", settled.PaymentStatus().String())
	}

	// Mirror the claim on the loaded aggregate so the caller sees the
	// settled state without another round trip.
	if err = aggregate.MarkPaid(cmd.TransactionID(), cmd.PaidAt()); err != nil {
		return nil, err
	}

	if err = reserveStock(ctx, uow.InventoryRepository(), aggregate.Items()); err != nil {
		return nil, err
	}

	if err = uow.CartRepository().Clear(ctx, aggregate.OwnerIdentity()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
