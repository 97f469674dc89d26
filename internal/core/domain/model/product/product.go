package product

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	// ErrInsufficientStock indicates that a reservation asked for more units
	// than the product currently has in stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrProductIsNotConstructed indicates that the Product was not properly
	// initialized through the NewProduct constructor function.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product represents a sellable catalog item with a unit price and a tracked
// stock level. Prices are stored as integer amounts in the smallest currency
// unit, so arithmetic on totals is exact.
//
// Key business rules:
//   - Must be constructed through NewProduct or RestoreProduct
//   - Stock can never go negative; Reserve fails with ErrInsufficientStock
//   - Reserved units are returned with Release when an order is rolled back
type Product struct {
	id kernel.UUID

	name string

	// unitPrice is the selling price per unit in the smallest currency unit.
	unitPrice int64

	// stock is the number of units currently available for sale.
	stock int

	guard guard.ConstructorGuard
}

// NewProduct creates a properly validated Product.
//
// Parameters:
//   - id: Unique identifier for the product (must be valid UUID)
//   - name: Display name (must not be empty)
//   - unitPrice: Price per unit (must not be negative)
//   - stock: Initial stock level (must not be negative)
func NewProduct(id kernel.UUID, name string, unitPrice int64, stock int) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setUnitPrice(unitPrice),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistent storage with its
// previously persisted stock level.
func RestoreProduct(id kernel.UUID, name string, unitPrice int64, stock int) (*Product, error) {
	return NewProduct(id, name, unitPrice, stock)
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the unique identifier of the product.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the display name of the product.
func (p *Product) Name() string {
	return p.name
}

// UnitPrice returns the price per unit in the smallest currency unit.
func (p *Product) UnitPrice() int64 {
	return p.unitPrice
}

// Stock returns the number of units currently available for sale.
func (p *Product) Stock() int {
	return p.stock
}

// HasStock reports whether the product can satisfy a reservation of the
// given quantity.
func (p *Product) HasStock(quantity int) (bool, error) {
	if quantity <= 0 {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return p.stock >= quantity, nil
}

// Reserve removes the given quantity from stock. It fails with
// ErrInsufficientStock when fewer units are available, leaving the stock
// level unchanged.
func (p *Product) Reserve(quantity int) error {
	ok, err := p.HasStock(quantity)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInsufficientStock
	}

	p.stock -= quantity
	return nil
}

// Release returns previously reserved units to stock. Used when an order
// is cancelled or a later reservation in the same checkout fails.
func (p *Product) Release(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	p.stock += quantity
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	p.name = name
	return nil
}

func (p *Product) setUnitPrice(unitPrice int64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice is invalid",
			fmt.Errorf("%d is negative", unitPrice),
		)
	}

	p.unitPrice = unitPrice
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock is invalid",
			fmt.Errorf("%d is negative", stock),
		)
	}

	p.stock = stock
	return nil
}

// Validate checks that the Product was constructed through a factory function.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}
