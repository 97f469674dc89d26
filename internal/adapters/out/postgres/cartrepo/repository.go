package cartrepo

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Put replaces one product entry in the owner's cart. Used to build carts
// in tests and by the cart-editing surface.
func (r *GormCartRepository) Put(ctx context.Context, ownerIdentity string, item ports.CartItem) error {
	if ownerIdentity == "" {
		return errs.NewValueIsRequiredError("ownerIdentity")
	}

	dto := CartItemDTO{
		OwnerIdentity: ownerIdentity,
		ProductID:     item.ProductID.Bytes(),
		ProductName:   item.ProductName,
		UnitPrice:     item.UnitPrice,
		Quantity:      item.Quantity,
	}

	err := r.db.WithContext(ctx).
		Where("owner_identity = ? AND product_id = ?", ownerIdentity, dto.ProductID).
		Delete(&CartItemDTO{}).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetItems retrieves the cart rows for the given owner identity.
func (r *GormCartRepository) GetItems(ctx context.Context, ownerIdentity string) ([]ports.CartItem, error) {
	if ownerIdentity == "" {
		return nil, errs.NewValueIsRequiredError("ownerIdentity")
	}

	var dtos []CartItemDTO
	err := r.db.WithContext(ctx).
		Where("owner_identity = ?", ownerIdentity).
		Order("id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]ports.CartItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toPortItem(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// Clear removes the cart for the given owner identity. Clearing an absent
// cart is not an error.
func (r *GormCartRepository) Clear(ctx context.Context, ownerIdentity string) error {
	if ownerIdentity == "" {
		return errs.NewValueIsRequiredError("ownerIdentity")
	}

	return r.db.WithContext(ctx).
		Where("owner_identity = ?", ownerIdentity).
		Delete(&CartItemDTO{}).Error
}

func kernelUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}
