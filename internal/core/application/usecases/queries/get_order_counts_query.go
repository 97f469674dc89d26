package queries

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderCountsQueryIsNotConstructed = errors.New(
	"GetOrderCountsQuery must be created via NewGetOrderCountsQuery constructor",
)

// GetOrderCountsQuery retrieves per-status order counts for one owner,
// powering the "my orders" tab badges.
type GetOrderCountsQuery struct { //nolint:recvcheck //using for validation
	ownerIdentity string

	guard guard.ConstructorGuard
}

// NewGetOrderCountsQuery creates a counts query for the given owner
// identity (user id or session id).
func NewGetOrderCountsQuery(ownerIdentity string) (GetOrderCountsQuery, error) {
	query := GetOrderCountsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOwnerIdentity(ownerIdentity); err != nil {
		return GetOrderCountsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderCountsQueryIsNotConstructed)
}

// OwnerIdentity returns the owner the counts are for.
func (q GetOrderCountsQuery) OwnerIdentity() string {
	return q.ownerIdentity
}

func (q *GetOrderCountsQuery) setOwnerIdentity(ownerIdentity string) error {
	if ownerIdentity == "" {
		return errs.NewValueIsRequiredError("ownerIdentity")
	}

	q.ownerIdentity = ownerIdentity
	return nil
}

// GetOrderCountsQueryResponse holds per-status counts for one owner.
type GetOrderCountsQueryResponse struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}
