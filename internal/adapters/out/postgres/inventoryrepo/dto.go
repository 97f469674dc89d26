// Package inventoryrepo persists product stock levels. Stock movements are
// expressed as conditional single-statement updates so the non-negative
// invariant holds under concurrent checkouts without explicit locking.
package inventoryrepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:256"`
	UnitPrice int64
	Stock     int
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:        p.ID().Bytes(),
		Name:      p.Name(),
		UnitPrice: p.UnitPrice(),
		Stock:     p.Stock(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.UnitPrice, dto.Stock)
}
