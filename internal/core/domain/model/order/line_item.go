package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem was not created
	// through the NewLineItem factory function.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is an immutable snapshot of one purchased product, captured at
// order-creation time. The unit price is the catalog price at that moment;
// later catalog or promotion changes never alter it.
type LineItem struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	productName string
	unitPrice   int64
	quantity    int

	guard guard.ConstructorGuard
}

// NewLineItem creates a line-item snapshot.
// The product id must be valid, the name non-empty, the unit price
// non-negative, and the quantity positive.
func NewLineItem(productID kernel.UUID, productName string, unitPrice int64, quantity int) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the LineItem was created through the constructor.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the identifier of the snapshotted product.
func (i LineItem) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name at order-creation time.
func (i LineItem) ProductName() string {
	return i.productName
}

// UnitPrice returns the frozen per-unit price in minor currency units.
func (i LineItem) UnitPrice() int64 {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i LineItem) Quantity() int {
	return i.quantity
}

// Subtotal returns unit price times quantity.
func (i LineItem) Subtotal() int64 {
	return i.unitPrice * int64(i.quantity)
}

func (i *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *LineItem) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice int64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%d is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
