package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// CartItem is a read-model row describing one product entry in a shopping
// cart. Checkout snapshots these rows into order line items; the cart itself
// stays mutable until it is cleared.
type CartItem struct {
	ProductID   kernel.UUID
	ProductName string
	UnitPrice   int64
	Quantity    int
}

// CartRepository defines the persistence contract for shopping carts.
// A cart belongs to either a registered user or an anonymous session,
// identified by a single owner identity string.
type CartRepository interface {
	// GetItems retrieves the cart rows for the given owner identity.
	// An empty slice means the owner has no cart or an empty one.
	GetItems(ctx context.Context, ownerIdentity string) ([]CartItem, error)

	// Clear removes the cart for the given owner identity. Clearing an
	// absent cart is not an error.
	Clear(ctx context.Context, ownerIdentity string) error
}
