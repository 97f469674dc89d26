package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListOrdersFilter restricts the order listing. Zero values mean "no
// restriction" for every field.
type ListOrdersFilter struct {
	// Status filters by order status string, e.g. "Pending".
	Status string
	// PaymentStatus filters by payment status string, e.g. "Paid".
	PaymentStatus string
	// OwnerIdentity matches either the user id or the session id.
	OwnerIdentity string
	// ShipperID restricts to orders assigned to one shipper.
	ShipperID *kernel.UUID
	// UsernameLike fuzzy-matches the owning user id.
	UsernameLike string
	// CreatedFrom and CreatedTo bound the creation time, inclusive.
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// ListOrdersQuery retrieves a filtered, paginated page of orders, newest
// first, together with the total match count.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	filter ListOrdersFilter
	page   int
	size   int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query. Page numbers start at 1;
// out-of-range sizes are clamped to the defaults rather than rejected.
// Status filter strings must name valid statuses.
func NewListOrdersQuery(filter ListOrdersFilter, page, size int) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setFilter(filter); err != nil {
		return ListOrdersQuery{}, err
	}
	query.setPage(page, size)

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Filter returns the listing restrictions.
func (q ListOrdersQuery) Filter() ListOrdersFilter {
	return q.filter
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q ListOrdersQuery) Size() int {
	return q.size
}

func (q *ListOrdersQuery) setFilter(filter ListOrdersFilter) error {
	if filter.Status != "" {
		if _, err := order.StatusFromString(filter.Status); err != nil {
			return err
		}
	}
	if filter.PaymentStatus != "" {
		if _, err := order.PaymentStatusFromString(filter.PaymentStatus); err != nil {
			return err
		}
	}
	if filter.ShipperID != nil {
		if err := filter.ShipperID.Validate(); err != nil {
			return err
		}
	}

	q.filter = filter
	return nil
}

func (q *ListOrdersQuery) setPage(page, size int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	q.page = page
	q.size = size
}

// ListOrdersResponse is one page of order summaries plus the total match
// count across all pages.
type ListOrdersResponse struct {
	Items []OrderSummaryResponse `json:"items"`
	Total int64                  `json:"total"`
	Page  int                    `json:"page"`
	Size  int                    `json:"size"`
}
