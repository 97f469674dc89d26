package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler pages over the orders table with optional filters.
// The total count is taken before pagination so clients can render page
// controls.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query, newest orders first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersResponse{}, err
	}

	tx := h.db.WithContext(ctx).Table("orders")
	tx = applyFilter(tx, query.Filter())

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return ListOrdersResponse{}, err
	}

	var rows []orderRow
	err := tx.
		Order("created_at DESC").
		Offset((query.Page() - 1) * query.Size()).
		Limit(query.Size()).
		Find(&rows).Error
	if err != nil {
		return ListOrdersResponse{}, err
	}

	items := make([]OrderSummaryResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toSummary())
	}

	return ListOrdersResponse{
		Items: items,
		Total: total,
		Page:  query.Page(),
		Size:  query.Size(),
	}, nil
}

func applyFilter(tx *gorm.DB, filter ListOrdersFilter) *gorm.DB {
	if filter.Status != "" {
		status, _ := order.StatusFromString(filter.Status)
		tx = tx.Where("status = ?", int(status))
	}
	if filter.PaymentStatus != "" {
		paymentStatus, _ := order.PaymentStatusFromString(filter.PaymentStatus)
		tx = tx.Where("payment_status = ?", int(paymentStatus))
	}
	if filter.OwnerIdentity != "" {
		tx = tx.Where("user_id = ? OR session_id = ?", filter.OwnerIdentity, filter.OwnerIdentity)
	}
	if filter.ShipperID != nil {
		tx = tx.Where("shipper_id = ?", filter.ShipperID.Bytes())
	}
	if filter.UsernameLike != "" {
		tx = tx.Where("user_id ILIKE ?", "%"+filter.UsernameLike+"%")
	}
	if filter.CreatedFrom != nil {
		tx = tx.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		tx = tx.Where("created_at <= ?", *filter.CreatedTo)
	}
	return tx
}
