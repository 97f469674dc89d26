package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderCountsQueryHandler aggregates order counts per status for one
// owner identity.
type GetOrderCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderCountsQueryHandler creates a handler for order count queries.
func NewGetOrderCountsQueryHandler(db *gorm.DB) GetOrderCountsQueryHandler {
	return GetOrderCountsQueryHandler{db: db}
}

// Handle executes the counts query. Statuses with no orders are present in
// the response with a zero count.
func (h GetOrderCountsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderCountsQuery,
) (GetOrderCountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderCountsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*) AS count
		FROM orders
		WHERE user_id = ? OR session_id = ?
		GROUP BY status
	`, query.OwnerIdentity(), query.OwnerIdentity()).Rows()
	if err != nil {
		return GetOrderCountsQueryResponse{}, err
	}
	defer rows.Close()

	response := GetOrderCountsQueryResponse{
		ByStatus: map[string]int64{
			order.StatusPending.String():   0,
			order.StatusApproved.String():  0,
			order.StatusShipping.String():  0,
			order.StatusDelivered.String(): 0,
			order.StatusCancelled.String(): 0,
		},
	}

	for rows.Next() {
		var status int
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return GetOrderCountsQueryResponse{}, err
		}

		response.ByStatus[order.Status(status).String()] = count
		response.Total += count
	}

	if err = rows.Err(); err != nil {
		return GetOrderCountsQueryResponse{}, err
	}

	return response, nil
}
