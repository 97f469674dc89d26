package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// InventoryRepository defines the persistence contract for product stock.
// Stock movements are expressed as atomic increments and decrements so the
// store can enforce the non-negative invariant without read-modify-write
// races between concurrent checkouts.
type InventoryRepository interface {
	// GetProduct retrieves a product with its current stock level.
	GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// DecrementStock atomically removes quantity units from the product's
	// stock. It fails with product.ErrInsufficientStock when fewer units are
	// available, leaving the stored level unchanged.
	DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error

	// IncrementStock atomically returns quantity units to the product's
	// stock. Used as the compensating move when a multi-item reservation
	// fails partway through.
	IncrementStock(ctx context.Context, id kernel.UUID, quantity int) error
}
