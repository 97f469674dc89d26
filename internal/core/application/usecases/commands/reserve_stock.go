package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// reserveStock decrements stock for every line item, all or nothing. On the
// first shortfall it issues compensating increments for the decrements
// already applied, then surfaces the original error. Inside a transaction
// the rollback makes the compensation redundant; outside one it is what
// keeps the ledger consistent.
func reserveStock(ctx context.Context, inventory ports.InventoryRepository, items []order.LineItem) error {
	for i, item := range items {
		if err := inventory.DecrementStock(ctx, item.ProductID(), item.Quantity()); err != nil {
			for _, applied := range items[:i] {
				_ = inventory.IncrementStock(ctx, applied.ProductID(), applied.Quantity())
			}
			return err
		}
	}
	return nil
}
