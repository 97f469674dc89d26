package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──┬──> Shipping ──> Delivered
//	          │       ^
//	          │       │
//	          ├──> Approved ──> Delivered
//	          │
//	          └──> Cancelled
//
// Approved is an administrative intermediate: it is a valid origin for
// shipper acceptance and delivery but no automatic flow produces it.
// Delivered and Cancelled are terminal.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is created.
	// Orders in this status await payment confirmation or administrative approval.
	StatusPending

	// StatusApproved indicates administrative approval before dispatch.
	// No automatic flow produces this value; see OverrideStatus.
	StatusApproved

	// StatusShipping indicates a shipper has accepted the order and is delivering it.
	StatusShipping

	// StatusDelivered indicates the order reached the customer. Terminal.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled, either by a failed
	// payment or by an administrator. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusApproved:  "Approved",
		StatusShipping:  "Shipping",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "Pending",
		StatusApproved:  "Approved",
		StatusShipping:  "Shipping",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
	}
}

// StatusFromString parses a status from its string representation.
// The comparison is exact; persistence stores the integer value and
// this function serves request parsing.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Approved, Shipping, Delivered, Cancelled.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Accept transitions the status to Shipping.
//
// Valid transitions:
//   - Pending -> Shipping (shipper accepts a new order)
//   - Approved -> Shipping (shipper accepts an approved order)
//
// Returns:
//   - (StatusShipping, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Accept() (Status, error) {
	if s != StatusPending && s != StatusApproved {
		return 0, errs.NewInvalidStateErrorWithCause(
			"accept",
			s.String(),
			fmt.Errorf("order can only be accepted from Pending or Approved"),
		)
	}

	return StatusShipping, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Shipping -> Delivered (normal flow)
//   - Approved -> Delivered (legacy equivalence for deployments where the
//     shipper confirms without an explicit accept step)
//
// Returns:
//   - (StatusDelivered, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Deliver() (Status, error) {
	if s != StatusShipping && s != StatusApproved {
		return 0, errs.NewInvalidStateErrorWithCause(
			"deliver",
			s.String(),
			fmt.Errorf("order can only be delivered from Shipping or Approved"),
		)
	}

	return StatusDelivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled (payment failure or administrative cancellation)
//   - Approved -> Cancelled (administrative cancellation before dispatch)
//
// Returns:
//   - (StatusCancelled, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Cancel() (Status, error) {
	if s != StatusPending && s != StatusApproved {
		return 0, errs.NewInvalidStateErrorWithCause(
			"cancel",
			s.String(),
			fmt.Errorf("order can only be cancelled from Pending or Approved"),
		)
	}

	return StatusCancelled, nil
}
