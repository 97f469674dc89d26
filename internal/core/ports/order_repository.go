// Package ports defines repository and gateway interfaces for the order
// fulfillment core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its public order number.
	GetByNumber(ctx context.Context, orderNumber string) (*order.Order, error)

	// ClaimPayment atomically marks the order as Paid with the given
	// transaction reference, but only while its payment is still pending.
	// It returns true when this caller performed the transition and false
	// when another caller already settled or failed the payment. Concurrent
	// gateway callbacks race on this claim; exactly one wins.
	ClaimPayment(ctx context.Context, id kernel.UUID, transactionID string, paidAt time.Time) (bool, error)

	// GetStalePendingPayments retrieves online orders whose payment has been
	// pending since before the cutoff. Used by the payment expiry job.
	GetStalePendingPayments(ctx context.Context, cutoff time.Time, limit int) ([]*order.Order, error)
}
