package inventoryrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// Add saves a new product to the database.
func (r *GormInventoryRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetProduct retrieves a product with its current stock level.
func (r *GormInventoryRepository) GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DecrementStock removes quantity units from the product's stock in one
// conditional UPDATE. The stock predicate is what enforces the non-negative
// invariant: a row short on stock is simply not matched, and RowsAffected
// distinguishes the shortfall from a missing product.
func (r *GormInventoryRepository) DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ? AND stock >= ?", id.Bytes(), quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("product", id.String())
		}
		return product.ErrInsufficientStock
	}

	return nil
}

// IncrementStock returns quantity units to the product's stock.
func (r *GormInventoryRepository) IncrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}

	return nil
}
