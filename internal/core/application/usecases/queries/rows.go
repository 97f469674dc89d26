package queries

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderRow mirrors a row of the orders table for read queries.
type orderRow struct {
	ID               uuid.UUID
	OrderNumber      string
	UserID           string
	SessionID        string
	RecipientName    string
	RecipientPhone   string
	RecipientAddress string
	RecipientNotes   string
	Total            int64
	Status           int
	PaymentMethod    int
	PaymentStatus    int
	TransactionID    string
	ShipperID        *uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
	PaidAt           *time.Time
	DeliveredAt      *time.Time
}

// itemRow mirrors a row of the order_items table.
type itemRow struct {
	ProductID   uuid.UUID
	ProductName string
	UnitPrice   int64
	Quantity    int
}

func (r orderRow) toResponse(items []itemRow) OrderResponse {
	responseItems := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		responseItems = append(responseItems, OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.UnitPrice * int64(item.Quantity),
		})
	}

	return OrderResponse{
		ID:               r.ID,
		OrderNumber:      r.OrderNumber,
		UserID:           r.UserID,
		SessionID:        r.SessionID,
		RecipientName:    r.RecipientName,
		RecipientPhone:   r.RecipientPhone,
		RecipientAddress: r.RecipientAddress,
		RecipientNotes:   r.RecipientNotes,
		Items:            responseItems,
		Total:            r.Total,
		Status:           order.Status(r.Status).String(),
		PaymentMethod:    order.PaymentMethod(r.PaymentMethod).String(),
		PaymentStatus:    order.PaymentStatus(r.PaymentStatus).String(),
		TransactionID:    r.TransactionID,
		ShipperID:        r.ShipperID,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
		PaidAt:           r.PaidAt,
		DeliveredAt:      r.DeliveredAt,
	}
}

func (r orderRow) toSummary() OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:             r.ID,
		OrderNumber:    r.OrderNumber,
		UserID:         r.UserID,
		RecipientName:  r.RecipientName,
		RecipientPhone: r.RecipientPhone,
		Total:          r.Total,
		Status:         order.Status(r.Status).String(),
		PaymentMethod:  order.PaymentMethod(r.PaymentMethod).String(),
		PaymentStatus:  order.PaymentStatus(r.PaymentStatus).String(),
		ShipperID:      r.ShipperID,
		CreatedAt:      r.CreatedAt,
	}
}

// loadOrderResponse fetches one order plus its line items by an arbitrary
// predicate on the orders table.
func loadOrderResponse(ctx context.Context, db *gorm.DB, where string, arg any) (OrderResponse, error) {
	var row orderRow
	result := db.WithContext(ctx).
		Table("orders").
		Where(where, arg).
		Limit(1).
		Find(&row)
	if result.Error != nil {
		return OrderResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", arg)
	}

	var items []itemRow
	err := db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			product_name,
			unit_price,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_name
	`, row.ID).Scan(&items).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return OrderResponse{}, err
	}

	return row.toResponse(items), nil
}
