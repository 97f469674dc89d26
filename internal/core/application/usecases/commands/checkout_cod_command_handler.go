package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

// CheckoutCODCommandHandler creates cash-on-delivery orders. Unlike the
// online flow there is no external confirmation step, so the order write,
// the stock decrement, and the cart clear all happen here in one
// transaction. A stock shortfall aborts the whole checkout and persists
// nothing.
type CheckoutCODCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCheckoutCODCommandHandler creates a handler for COD checkouts.
func NewCheckoutCODCommandHandler(uowFactory CheckoutUoWFactory) CheckoutCODCommandHandler {
	return CheckoutCODCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks out the owner's cart with cash on delivery. Returns the
// created order, already stock-committed and settled as CODPaid.
func (h CheckoutCODCommandHandler) Handle(ctx context.Context, cmd CheckoutCODCommand) (*order.Order, error) {
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

	cartItems, err := uow.CartRepository().GetItems(ctx, cmd.CartOwnerIdentity())
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrCartIsEmpty
	}

	items, err := snapshotLineItems(cartItems)
	if err != nil {
		return nil, err
	}

	recipient, err := order.NewRecipient(
		cmd.RecipientName(),
		cmd.RecipientPhone(),
		cmd.RecipientAddress(),
		cmd.RecipientNotes(),
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	created, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		cmd.SessionID(),
		recipient,
		items,
		order.PaymentCOD,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = created.CommitCOD(now); err != nil {
		return nil, err
	}

	if err = reserveStock(ctx, uow.InventoryRepository(), created.Items()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.CartRepository().Clear(ctx, cmd.CartOwnerIdentity()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
