// Package vnpay implements the online payment gateway port against the
// VNPay v2.1.0 redirect protocol. The buyer is redirected to a signed pay
// URL and VNPay calls back with a signed result; both directions use
// HMAC-SHA512 over the sorted, URL-encoded parameter set.
package vnpay

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ErrInvalidSignature indicates a callback whose secure hash does not match.
// Such callbacks must never influence order state.
var ErrInvalidSignature = errors.New("payment callback signature is invalid")

const (
	version = "2.1.0"
	command = "pay"

	// VNPay amounts are expressed in hundredths of a dong.
	amountScale = 100

	dateLayout = "20060102150405"

	paymentTTL = 15 * time.Minute

	responseCodeSuccess      = "00"
	transactionStatusSuccess = "00"
)

// vnpLocation is the provider's reference timezone for vnp_CreateDate,
// vnp_ExpireDate and vnp_PayDate.
var vnpLocation = time.FixedZone("ICT", 7*60*60)

// Config holds merchant credentials and endpoints for the VNPay gateway.
type Config struct {
	TmnCode    string
	HashSecret string
	PayURL     string
	ReturnURL  string
}

func (c Config) validate() error {
	return errors.Join(
		requireString("TmnCode", c.TmnCode),
		requireString("HashSecret", c.HashSecret),
		requireString("PayURL", c.PayURL),
		requireString("ReturnURL", c.ReturnURL),
	)
}

func requireString(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

// Gateway is the VNPay implementation of ports.PaymentGateway.
type Gateway struct {
	cfg Config
}

// NewGateway creates a VNPay gateway from merchant configuration.
func NewGateway(cfg Config) (*Gateway, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Gateway{cfg: cfg}, nil
}

// BuildRedirectURL creates the signed pay URL for an order. The order ID is
// carried in vnp_TxnRef so the callback can be mapped back without parsing
// free-form text.
func (g *Gateway) BuildRedirectURL(req ports.PaymentRequest) (string, error) {
	if err := req.OrderID.Validate(); err != nil {
		return "", err
	}
	if req.Amount <= 0 {
		return "", errs.NewValueIsInvalidError("Amount")
	}

	createdAt := req.CreatedAt.In(vnpLocation)

	params := url.Values{}
	params.Set("vnp_Version", version)
	params.Set("vnp_Command", command)
	params.Set("vnp_TmnCode", g.cfg.TmnCode)
	params.Set("vnp_Amount", strconv.FormatInt(req.Amount*amountScale, 10))
	params.Set("vnp_CurrCode", "VND")
	params.Set("vnp_TxnRef", req.OrderID.String())
	params.Set("vnp_OrderInfo", req.OrderInfo)
	params.Set("vnp_OrderType", "other")
	params.Set("vnp_Locale", "vn")
	params.Set("vnp_ReturnUrl", g.cfg.ReturnURL)
	params.Set("vnp_IpAddr", req.ClientIP)
	params.Set("vnp_CreateDate", createdAt.Format(dateLayout))
	params.Set("vnp_ExpireDate", createdAt.Add(paymentTTL).Format(dateLayout))

	query := canonicalQuery(params)
	secureHash := g.sign(query)

	return g.cfg.PayURL + "?" + query + "&vnp_SecureHash=" + secureHash, nil
}

// ParseCallback verifies the secure hash on a gateway return call and maps
// it to a payment outcome. Signature failures are returned as
// ErrInvalidSignature; a verified decline is a successful parse with
// Succeeded=false.
func (g *Gateway) ParseCallback(params url.Values) (ports.PaymentCallback, error) {
	received := params.Get("vnp_SecureHash")
	if received == "" {
		return ports.PaymentCallback{}, ErrInvalidSignature
	}

	signed := url.Values{}
	for key, values := range params {
		if key == "vnp_SecureHash" || key == "vnp_SecureHashType" {
			continue
		}
		for _, v := range values {
			signed.Add(key, v)
		}
	}

	expected := g.sign(canonicalQuery(signed))
	if !hmac.Equal([]byte(strings.ToLower(received)), []byte(expected)) {
		return ports.PaymentCallback{}, ErrInvalidSignature
	}

	orderID, err := kernel.UUIDFromString(params.Get("vnp_TxnRef"))
	if err != nil {
		return ports.PaymentCallback{}, errs.NewValueIsInvalidErrorWithCause("vnp_TxnRef", err)
	}

	rawAmount := params.Get("vnp_Amount")
	scaled, err := strconv.ParseInt(rawAmount, 10, 64)
	if err != nil {
		return ports.PaymentCallback{}, errs.NewValueIsInvalidErrorWithCause("vnp_Amount", err)
	}

	paidAt := time.Now()
	if raw := params.Get("vnp_PayDate"); raw != "" {
		parsed, parseErr := time.ParseInLocation(dateLayout, raw, vnpLocation)
		if parseErr != nil {
			return ports.PaymentCallback{}, errs.NewValueIsInvalidErrorWithCause("vnp_PayDate", parseErr)
		}
		paidAt = parsed
	}

	succeeded := params.Get("vnp_ResponseCode") == responseCodeSuccess &&
		params.Get("vnp_TransactionStatus") == transactionStatusSuccess

	return ports.PaymentCallback{
		OrderID:       orderID,
		TransactionID: params.Get("vnp_TransactionNo"),
		Amount:        scaled / amountScale,
		Succeeded:     succeeded,
		PaidAt:        paidAt,
	}, nil
}

// canonicalQuery renders parameters in the exact form VNPay signs:
// keys sorted ascending, keys and values URL-encoded.
func canonicalQuery(params url.Values) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		for _, value := range params[key] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			fmt.Fprintf(&b, "%s=%s", url.QueryEscape(key), url.QueryEscape(value))
		}
	}
	return b.String()
}

func (g *Gateway) sign(data string) string {
	mac := hmac.New(sha512.New, []byte(g.cfg.HashSecret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
