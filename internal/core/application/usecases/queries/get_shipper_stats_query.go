package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetShipperStatsQueryIsNotConstructed = errors.New(
	"GetShipperStatsQuery must be created via NewGetShipperStatsQuery constructor",
)

// GetShipperStatsQuery retrieves workload and collection statistics for
// one shipper.
type GetShipperStatsQuery struct { //nolint:recvcheck //using for validation
	shipperID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipperStatsQuery creates a stats query for the given shipper.
func NewGetShipperStatsQuery(shipperID kernel.UUID) (GetShipperStatsQuery, error) {
	query := GetShipperStatsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setShipperID(shipperID); err != nil {
		return GetShipperStatsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipperStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipperStatsQueryIsNotConstructed)
}

// ShipperID returns the shipper the stats are for.
func (q GetShipperStatsQuery) ShipperID() kernel.UUID {
	return q.shipperID
}

func (q *GetShipperStatsQuery) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	q.shipperID = shipperID
	return nil
}

// GetShipperStatsQueryResponse summarizes a shipper's workload.
// CODCollected is the summed total of delivered cash-on-delivery orders,
// the amount of cash the shipper is accountable for.
type GetShipperStatsQueryResponse struct {
	Shipping     int64 `json:"shipping"`
	Delivered    int64 `json:"delivered"`
	CODDelivered int64 `json:"codDelivered"`
	CODCollected int64 `json:"codCollected"`
}
