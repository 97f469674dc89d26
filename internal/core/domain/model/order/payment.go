package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// PaymentMethod identifies how an order is settled.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentOnline settles through the online payment gateway redirect flow.
	PaymentOnline

	// PaymentCOD settles in cash at delivery time. Treated as a binding
	// commitment at order-creation time for inventory purposes.
	PaymentCOD
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "Unknown",
		PaymentOnline:        "Online",
		PaymentCOD:           "COD",
	}
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if m != PaymentOnline && m != PaymentCOD {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the human-readable name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// PaymentStatus represents the settlement state of an order's payment.
//
// Sub-machine:
//
//	PaymentPending ──> Paid     (online gateway confirmation)
//	PaymentPending ──> CODPaid  (cash-on-delivery commitment at creation)
//	PaymentPending ──> PaymentFailed
//
// Paid, CODPaid, and PaymentFailed are terminal for this layer.
// Refunded is a reachable enumeration value with no modeled transition here.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentPending indicates the payment outcome is not yet known.
	PaymentPending

	// Paid indicates the online gateway confirmed the payment.
	Paid

	// CODPaid indicates the cash-on-delivery commitment was accepted at creation.
	CODPaid

	// PaymentFailed indicates the online payment failed or was abandoned.
	PaymentFailed

	// Refunded indicates the payment was returned to the customer.
	// No flow in this layer produces it; it exists for reporting.
	Refunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "Unknown",
		PaymentPending:       "Pending",
		Paid:                 "Paid",
		CODPaid:              "CODPaid",
		PaymentFailed:        "Failed",
		Refunded:             "Refunded",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentStatusUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending: "Pending",
		Paid:           "Paid",
		CODPaid:        "CODPaid",
		PaymentFailed:  "Failed",
		Refunded:       "Refunded",
	}
}

// PaymentStatusFromString parses a payment status from its string representation.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status is invalid",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsSettled reports whether inventory was committed for an order carrying
// this payment status. Settled statuses imply stock was decremented exactly
// once for the order.
func (s PaymentStatus) IsSettled() bool {
	return s == Paid || s == CODPaid
}

// MarkPaid transitions the payment status to Paid.
// Only a pending payment can be confirmed.
func (s PaymentStatus) MarkPaid() (PaymentStatus, error) {
	if s != PaymentPending {
		return 0, errs.NewInvalidStateErrorWithCause(
			"confirm payment",
			s.String(),
			fmt.Errorf("payment can only be confirmed from Pending"),
		)
	}

	return Paid, nil
}

// MarkCODPaid transitions the payment status to CODPaid.
// Only a pending payment can be committed as cash-on-delivery.
func (s PaymentStatus) MarkCODPaid() (PaymentStatus, error) {
	if s != PaymentPending {
		return 0, errs.NewInvalidStateErrorWithCause(
			"commit cash-on-delivery",
			s.String(),
			fmt.Errorf("cash-on-delivery can only be committed from Pending"),
		)
	}

	return CODPaid, nil
}

// MarkFailed transitions the payment status to PaymentFailed.
// Only a pending payment can fail.
func (s PaymentStatus) MarkFailed() (PaymentStatus, error) {
	if s != PaymentPending {
		return 0, errs.NewInvalidStateErrorWithCause(
			"fail payment",
			s.String(),
			fmt.Errorf("payment can only fail from Pending"),
		)
	}

	return PaymentFailed, nil
}
