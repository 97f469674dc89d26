package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOwnerIsRequired is returned when an order carries neither a user id
	// nor an anonymous session id.
	ErrOwnerIsRequired = errors.New("order requires a user id or a session id")

	// ErrNoLineItems is returned when an order would be created without items.
	ErrNoLineItems = errors.New("order requires at least one line item")
)

// Order is the central aggregate of the fulfillment core. It captures a
// checkout as a durable record: an immutable snapshot of the purchased items,
// the recipient details, the payment reconciliation state, and the delivery
// workflow state.
//
// Order maintains these invariants:
//   - The total equals the frozen sum of line-item snapshots; catalog price
//     changes after creation never alter it.
//   - A settled payment status (Paid or CODPaid) implies inventory was
//     decremented exactly once for every line item.
//   - A cancelled order never had inventory decremented; online orders only
//     commit stock at payment confirmation, not at creation.
//   - Status transitions are monotonic along the state machine; no transition
//     skips backward.
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. The OrderLifecycleManager command
// handlers are the sole writers.
type Order struct {
	id          kernel.UUID
	orderNumber string

	// userID and sessionID identify the owner. At most one is authoritative;
	// a logged-in user id may be attached after creation via AssignUser.
	userID    string
	sessionID string

	recipient Recipient
	items     []LineItem
	total     int64

	status        Status
	paymentMethod PaymentMethod
	paymentStatus PaymentStatus

	// transactionID is the gateway reference, present only once payment
	// is confirmed.
	transactionID string

	// shipperID is the fulfillment agent, assigned once.
	shipperID *kernel.UUID

	createdAt   time.Time
	updatedAt   time.Time
	paidAt      *time.Time
	deliveredAt *time.Time

	isConstructed bool
}

// NewOrder creates a new Order from a cart snapshot.
//
// The order starts in Pending status with a Pending payment; line items are
// the frozen snapshots taken from the cart and the total is computed once
// from them. The order number is generated from the creation time.
//
// Validation rules:
//   - id must be a valid UUID
//   - at least one of userID / sessionID must be non-empty
//   - recipient must be constructed; for cash-on-delivery it must be complete
//   - items must be non-empty and individually valid
//   - method must be a valid payment method
func NewOrder(
	id kernel.UUID,
	userID, sessionID string,
	recipient Recipient,
	items []LineItem,
	method PaymentMethod,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		paymentStatus: PaymentPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwner(userID, sessionID),
		o.setRecipient(recipient, method),
		o.setItems(items),
		o.setPaymentMethod(method),
	); err != nil {
		return nil, err
	}

	o.orderNumber = GenerateOrderNumber(now)
	o.createdAt = now
	o.updatedAt = now
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running
// creation-time side effects. The stored total is taken as-is: it is the
// frozen sum captured at creation and must never be recomputed.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	userID, sessionID string,
	recipient Recipient,
	items []LineItem,
	total int64,
	status Status,
	method PaymentMethod,
	paymentStatus PaymentStatus,
	transactionID string,
	shipperID *kernel.UUID,
	createdAt, updatedAt time.Time,
	paidAt, deliveredAt *time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		method.Validate(),
		paymentStatus.Validate(),
		recipient.Validate(),
	); err != nil {
		return nil, err
	}
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}
	if userID == "" && sessionID == "" {
		return nil, ErrOwnerIsRequired
	}
	if shipperID != nil {
		if err := shipperID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		orderNumber:   orderNumber,
		userID:        userID,
		sessionID:     sessionID,
		recipient:     recipient,
		items:         append([]LineItem(nil), items...),
		total:         total,
		status:        status,
		paymentMethod: method,
		paymentStatus: paymentStatus,
		transactionID: transactionID,
		shipperID:     shipperID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		paidAt:        paidAt,
		deliveredAt:   deliveredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a factory
// function. This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-facing unique order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// UserID returns the registered-user owner id, or "" when the order is
// owned by an anonymous session.
func (o *Order) UserID() string {
	return o.userID
}

// SessionID returns the anonymous session owner id, or "" when absent.
func (o *Order) SessionID() string {
	return o.sessionID
}

// OwnerIdentity returns the authoritative owner reference: the user id when
// present, otherwise the session id. Carts are keyed by this identity.
func (o *Order) OwnerIdentity() string {
	if o.userID != "" {
		return o.userID
	}
	return o.sessionID
}

// Recipient returns the delivery contact details.
func (o *Order) Recipient() Recipient {
	return o.recipient
}

// Items returns a copy of the frozen line-item snapshots.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// Total returns the frozen order total in minor currency units.
func (o *Order) Total() int64 {
	return o.total
}

// Status returns the current workflow status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns the settlement method.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the settlement state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// TransactionID returns the gateway transaction reference, or "" before
// payment confirmation.
func (o *Order) TransactionID() string {
	return o.transactionID
}

// Shipper returns the assigned fulfillment agent's id, or nil if unassigned.
func (o *Order) Shipper() *kernel.UUID {
	return o.shipperID
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// PaidAt returns the payment confirmation timestamp, or nil.
func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

// DeliveredAt returns the delivery timestamp, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// AssignUser attaches a registered-user id to an order created under an
// anonymous session, typically when the customer logs in during checkout.
// The session id is retained for cart correlation; the user id becomes
// authoritative.
func (o *Order) AssignUser(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userID")
	}
	o.userID = userID
	return nil
}

// MarkPaid records a confirmed online payment.
//
// Business rules:
//   - the order must be an online-payment order
//   - the payment status must transition Pending -> Paid
//
// The workflow status stays Pending: the order still awaits administrative
// approval before dispatch. The caller is responsible for committing
// inventory before invoking this method.
func (o *Order) MarkPaid(transactionID string, at time.Time) error {
	if o.paymentMethod != PaymentOnline {
		return errs.NewInvalidStateErrorWithCause(
			"confirm payment",
			o.paymentMethod.String(),
			fmt.Errorf("only online orders are confirmed by the gateway"),
		)
	}
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transactionID")
	}

	newStatus, err := o.paymentStatus.MarkPaid()
	if err != nil {
		return err
	}

	o.paymentStatus = newStatus
	o.transactionID = transactionID
	paidAt := at
	o.paidAt = &paidAt
	o.touch(at)
	return nil
}

// MarkPaymentFailed records a failed or rejected online payment.
// The order is cancelled, the payment status becomes Failed, and any
// transaction reference is cleared. The originating cart is deliberately
// left intact by the caller so the customer can retry checkout.
func (o *Order) MarkPaymentFailed(at time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	newPayment, err := o.paymentStatus.MarkFailed()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentStatus = newPayment
	o.transactionID = ""
	o.paidAt = nil
	o.touch(at)
	return nil
}

// CommitCOD settles a cash-on-delivery order at creation time. The payment
// status becomes CODPaid and the commitment time is recorded. The caller is
// responsible for committing inventory in the same transaction.
func (o *Order) CommitCOD(at time.Time) error {
	if o.paymentMethod != PaymentCOD {
		return errs.NewInvalidStateErrorWithCause(
			"commit cash-on-delivery",
			o.paymentMethod.String(),
			fmt.Errorf("order is not cash-on-delivery"),
		)
	}

	newStatus, err := o.paymentStatus.MarkCODPaid()
	if err != nil {
		return err
	}

	o.paymentStatus = newStatus
	paidAt := at
	o.paidAt = &paidAt
	o.touch(at)
	return nil
}

// AcceptByShipper records that a fulfillment agent took the order for
// delivery. Permitted only from Pending or Approved; the order transitions
// to Shipping and the shipper is recorded.
func (o *Order) AcceptByShipper(shipperID kernel.UUID, at time.Time) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.shipperID = &shipperID
	o.touch(at)
	return nil
}

// MarkDelivered records a successful delivery confirmed by the shipper.
// Permitted from Shipping or the legacy Approved intermediate. The shipper
// is backfilled when unset; the deployment assumes a single fulfillment
// agent, so the confirming shipper is not validated against the accepting
// one.
func (o *Order) MarkDelivered(shipperID kernel.UUID, at time.Time) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	if o.shipperID == nil {
		o.shipperID = &shipperID
	}
	deliveredAt := at
	o.deliveredAt = &deliveredAt
	o.touch(at)
	return nil
}

// ConfirmCODDelivered records that a cash-on-delivery order was handed to
// the customer. Permitted only when the order is out for shipping and the
// payment method is COD; the payment itself was settled at creation.
func (o *Order) ConfirmCODDelivered(at time.Time) error {
	if o.paymentMethod != PaymentCOD {
		return errs.NewInvalidStateErrorWithCause(
			"confirm cash-on-delivery delivery",
			o.paymentMethod.String(),
			fmt.Errorf("order is not cash-on-delivery"),
		)
	}
	if o.status != StatusShipping {
		return errs.NewInvalidStateErrorWithCause(
			"confirm cash-on-delivery delivery",
			o.status.String(),
			fmt.Errorf("order must be out for shipping"),
		)
	}

	o.status = StatusDelivered
	deliveredAt := at
	o.deliveredAt = &deliveredAt
	o.touch(at)
	return nil
}

// OverrideStatus sets the workflow status directly, without origin-state
// validation. This mirrors the administrative override of the surrounding
// storefront; the lack of a transition check is a known design gap.
func (o *Order) OverrideStatus(newStatus Status, at time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	o.touch(at)
	return nil
}

func (o *Order) touch(at time.Time) {
	o.updatedAt = at
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwner(userID, sessionID string) error {
	if userID == "" && sessionID == "" {
		return ErrOwnerIsRequired
	}
	o.userID = userID
	o.sessionID = sessionID
	return nil
}

func (o *Order) setRecipient(recipient Recipient, method PaymentMethod) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	if method == PaymentCOD && !recipient.IsComplete() {
		return errs.NewValueIsRequiredError("recipient name, phone, and address")
	}
	o.recipient = recipient
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrNoLineItems
	}

	var total int64
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total += item.Subtotal()
	}

	o.items = append([]LineItem(nil), items...)
	o.total = total
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}
