// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational tables with indexes for the
// common lookups: by owner, by status, by shipper, and by order number.
type OrderDTO struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey"`
	OrderNumber   string       `gorm:"size:32;uniqueIndex"`
	UserID        string       `gorm:"size:64;index"`
	SessionID     string       `gorm:"size:64;index"`
	Recipient     RecipientDTO `gorm:"embedded;embeddedPrefix:recipient_"`
	Items         []ItemDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Total         int64
	Status        int `gorm:"index"`
	PaymentMethod int
	PaymentStatus int        `gorm:"index"`
	TransactionID string     `gorm:"size:64"`
	ShipperID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time  `gorm:"index"`
	UpdatedAt     time.Time
	PaidAt        *time.Time
	DeliveredAt   *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// RecipientDTO represents the embedded delivery contact within the order
// table.
type RecipientDTO struct {
	Name    string `gorm:"size:128"`
	Phone   string `gorm:"size:32"`
	Address string `gorm:"size:512"`
	Notes   string `gorm:"size:512"`
}

// ItemDTO represents one persisted order line. Lines are immutable once the
// order exists, they are written on Add and never updated.
type ItemDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid"`
	ProductName string    `gorm:"size:256"`
	UnitPrice   int64
	Quantity    int
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, including its line items.
func fromDomain(aggregate *order.Order) OrderDTO {
	var shipperID *uuid.UUID
	if id := aggregate.Shipper(); id != nil {
		raw := id.Bytes()
		shipperID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
		})
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		UserID:      aggregate.UserID(),
		SessionID:   aggregate.SessionID(),
		Recipient: RecipientDTO{
			Name:    aggregate.Recipient().Name(),
			Phone:   aggregate.Recipient().Phone(),
			Address: aggregate.Recipient().Address(),
			Notes:   aggregate.Recipient().Notes(),
		},
		Items:         items,
		Total:         aggregate.Total(),
		Status:        int(aggregate.Status()),
		PaymentMethod: int(aggregate.PaymentMethod()),
		PaymentStatus: int(aggregate.PaymentStatus()),
		TransactionID: aggregate.TransactionID(),
		ShipperID:     shipperID,
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		PaidAt:        aggregate.PaidAt(),
		DeliveredAt:   aggregate.DeliveredAt(),
	}
}

// toDomain converts a database DTO back into an order aggregate using
// RestoreOrder, preserving the persisted state as-is.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var shipperID *kernel.UUID
	if dto.ShipperID != nil {
		sID, shipperErr := kernel.UUIDFromBytes((*dto.ShipperID)[:])
		if shipperErr != nil {
			return nil, shipperErr
		}

		shipperID = &sID
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewLineItem(productID, itemDTO.ProductName, itemDTO.UnitPrice, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	recipient := order.NewDraftRecipient(
		dto.Recipient.Name,
		dto.Recipient.Phone,
		dto.Recipient.Address,
		dto.Recipient.Notes,
	)

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		dto.UserID,
		dto.SessionID,
		recipient,
		items,
		dto.Total,
		order.Status(dto.Status),
		order.PaymentMethod(dto.PaymentMethod),
		order.PaymentStatus(dto.PaymentStatus),
		dto.TransactionID,
		shipperID,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.PaidAt,
		dto.DeliveredAt,
	)
}
