package queries

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
	"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
)

// GetOrderByNumberQuery retrieves a single order with its line items by its
// public order number, the identifier shown to buyers.
type GetOrderByNumberQuery struct { //nolint:recvcheck //using for validation
	orderNumber string

	guard guard.ConstructorGuard
}

// NewGetOrderByNumberQuery creates a query for one order by its number.
func NewGetOrderByNumberQuery(orderNumber string) (GetOrderByNumberQuery, error) {
	query := GetOrderByNumberQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderNumber(orderNumber); err != nil {
		return GetOrderByNumberQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

// OrderNumber returns the requested order number.
func (q GetOrderByNumberQuery) OrderNumber() string {
	return q.orderNumber
}

func (q *GetOrderByNumberQuery) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}

	q.orderNumber = orderNumber
	return nil
}
