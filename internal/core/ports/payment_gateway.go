package ports

import (
	"net/url"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// PaymentRequest carries everything the gateway needs to start an online
// payment for an order. Amount is in the smallest currency unit.
type PaymentRequest struct {
	OrderID   kernel.UUID
	Amount    int64
	OrderInfo string
	ClientIP  string
	CreatedAt time.Time
}

// PaymentCallback is the verified result of a gateway return call.
// OrderID is recovered from the gateway's transaction reference field,
// TransactionID is the gateway-side payment identifier.
type PaymentCallback struct {
	OrderID       kernel.UUID
	TransactionID string
	Amount        int64
	Succeeded     bool
	PaidAt        time.Time
}

// PaymentGateway abstracts the external online-payment provider. The core
// treats payment as an opaque redirect-then-callback exchange; provider
// specifics (parameter names, signing) live in the adapter.
type PaymentGateway interface {
	// BuildRedirectURL creates the signed provider URL the buyer is sent to.
	BuildRedirectURL(req PaymentRequest) (string, error)

	// ParseCallback verifies the signature on a gateway return call and
	// extracts the payment outcome. A tampered or unsigned callback is an
	// error; a well-formed decline is a PaymentCallback with
	// Succeeded=false.
	ParseCallback(params url.Values) (PaymentCallback, error)
}
