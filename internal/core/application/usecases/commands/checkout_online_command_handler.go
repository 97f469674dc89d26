package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// ErrCartIsEmpty indicates that the owner has no cart or an empty one, so
// there is nothing to check out.
var ErrCartIsEmpty = errors.New("cart is empty")

// CheckoutOnlineCommandHandler creates orders from carts for online payment.
// The cart is only read here; it is cleared later when the gateway confirms
// the payment, so an abandoned redirect leaves the cart intact.
type CheckoutOnlineCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCheckoutOnlineCommandHandler creates a handler for online checkouts.
func NewCheckoutOnlineCommandHandler(uowFactory CheckoutUoWFactory) CheckoutOnlineCommandHandler {
	return CheckoutOnlineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle snapshots the owner's cart into a new order with payment pending.
// Returns the created order so the caller can start the payment redirect.
func (h CheckoutOnlineCommandHandler) Handle(ctx context.Context, cmd CheckoutOnlineCommand) (*order.Order, error) {
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

	recipient := order.NewDraftRecipient(
		cmd.RecipientName(),
		cmd.RecipientPhone(),
		cmd.RecipientAddress(),
		cmd.RecipientNotes(),
	)

	created, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		cmd.SessionID(),
		recipient,
		items,
		order.PaymentOnline,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// snapshotLineItems freezes cart rows into immutable order line items.
func snapshotLineItems(cartItems []ports.CartItem) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(cartItems))
	for _, row := range cartItems {
		item, err := order.NewLineItem(row.ProductID, row.ProductName, row.UnitPrice, row.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
