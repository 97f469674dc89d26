// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"time"

	"github.com/google/uuid"
)

// OrderItemResponse is one line of an order in the read model.
type OrderItemResponse struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	UnitPrice   int64     `json:"unitPrice"`
	Quantity    int       `json:"quantity"`
	Subtotal    int64     `json:"subtotal"`
}

// OrderResponse is the full order read model returned by detail queries.
type OrderResponse struct {
	ID               uuid.UUID           `json:"id"`
	OrderNumber      string              `json:"orderNumber"`
	UserID           string              `json:"userId,omitempty"`
	SessionID        string              `json:"sessionId,omitempty"`
	RecipientName    string              `json:"recipientName"`
	RecipientPhone   string              `json:"recipientPhone"`
	RecipientAddress string              `json:"recipientAddress"`
	RecipientNotes   string              `json:"recipientNotes,omitempty"`
	Items            []OrderItemResponse `json:"items"`
	Total            int64               `json:"total"`
	Status           string              `json:"status"`
	PaymentMethod    string              `json:"paymentMethod"`
	PaymentStatus    string              `json:"paymentStatus"`
	TransactionID    string              `json:"transactionId,omitempty"`
	ShipperID        *uuid.UUID          `json:"shipperId,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
	PaidAt           *time.Time          `json:"paidAt,omitempty"`
	DeliveredAt      *time.Time          `json:"deliveredAt,omitempty"`
}

// OrderSummaryResponse is the compact order row returned by list queries.
// Line items are omitted; the detail query returns them.
type OrderSummaryResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrderNumber    string     `json:"orderNumber"`
	UserID         string     `json:"userId,omitempty"`
	RecipientName  string     `json:"recipientName"`
	RecipientPhone string     `json:"recipientPhone"`
	Total          int64      `json:"total"`
	Status         string     `json:"status"`
	PaymentMethod  string     `json:"paymentMethod"`
	PaymentStatus  string     `json:"paymentStatus"`
	ShipperID      *uuid.UUID `json:"shipperId,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}
