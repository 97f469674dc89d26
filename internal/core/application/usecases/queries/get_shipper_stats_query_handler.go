package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetShipperStatsQueryHandler aggregates one shipper's workload from the
// orders table in a single pass.
type GetShipperStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipperStatsQueryHandler creates a handler for shipper stats
// queries.
func NewGetShipperStatsQueryHandler(db *gorm.DB) GetShipperStatsQueryHandler {
	return GetShipperStatsQueryHandler{db: db}
}

// Handle executes the stats query.
func (h GetShipperStatsQueryHandler) Handle(
	ctx context.Context,
	query GetShipperStatsQuery,
) (GetShipperStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipperStatsQueryResponse{}, err
	}

	var response GetShipperStatsQueryResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = ?) AS shipping,
			COUNT(*) FILTER (WHERE status = ?) AS delivered,
			COUNT(*) FILTER (WHERE status = ? AND payment_method = ?) AS cod_delivered,
			COALESCE(SUM(total) FILTER (WHERE status = ? AND payment_method = ?), 0) AS cod_collected
		FROM orders
		WHERE shipper_id = ?
	`,
		int(order.StatusShipping),
		int(order.StatusDelivered),
		int(order.StatusDelivered), int(order.PaymentCOD),
		int(order.StatusDelivered), int(order.PaymentCOD),
		query.ShipperID().Bytes(),
	).Scan(&response).Error
	if err != nil {
		return GetShipperStatsQueryResponse{}, err
	}

	return response, nil
}
