package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves order details from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order with its line items.
// Returns errs.ErrObjectNotFound when no such order exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	return loadOrderResponse(ctx, h.db, "id = ?", query.OrderID().Bytes())
}
