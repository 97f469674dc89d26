// Package cartrepo persists shopping carts as flat rows keyed by the owner
// identity (user id or anonymous session id).
package cartrepo

import (
	"storefront/internal/core/ports"

	"github.com/google/uuid"
)

// CartItemDTO represents one product entry in an owner's cart.
type CartItemDTO struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	OwnerIdentity string    `gorm:"size:64;index"`
	ProductID     uuid.UUID `gorm:"type:uuid"`
	ProductName   string    `gorm:"size:256"`
	UnitPrice     int64
	Quantity      int
}

// TableName specifies the database table name for cart entries.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

func toPortItem(dto CartItemDTO) (ports.CartItem, error) {
	productID, err := kernelUUID(dto.ProductID)
	if err != nil {
		return ports.CartItem{}, err
	}

	return ports.CartItem{
		ProductID:   productID,
		ProductName: dto.ProductName,
		UnitPrice:   dto.UnitPrice,
		Quantity:    dto.Quantity,
	}, nil
}
