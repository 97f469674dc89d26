package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderByNumberQueryHandler retrieves order details by order number.
type GetOrderByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByNumberQueryHandler creates a handler for order lookups by
// number.
func NewGetOrderByNumberQueryHandler(db *gorm.DB) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{db: db}
}

// Handle executes the query and returns the order with its line items.
// Returns errs.ErrObjectNotFound when no such order exists.
func (h GetOrderByNumberQueryHandler) Handle(ctx context.Context, query GetOrderByNumberQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	return loadOrderResponse(ctx, h.db, "order_number = ?", query.OrderNumber())
}
