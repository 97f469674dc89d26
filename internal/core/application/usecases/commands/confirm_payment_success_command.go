package commands

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrConfirmPaymentSuccessCommandIsNotConstructed = errors.New(
	"ConfirmPaymentSuccessCommand must be created via NewConfirmPaymentSuccessCommand constructor",
)

// ConfirmPaymentSuccessCommand represents a verified successful payment
// callback from the gateway. The gateway adapter has already checked the
// signature; this command carries only the extracted facts.
type ConfirmPaymentSuccessCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	transactionID string
	amount        int64
	paidAt        time.Time

	guard guard.ConstructorGuard
}

// NewConfirmPaymentSuccessCommand creates a command to settle an online
// payment. Requires a valid order id, a non-empty gateway transaction id,
// and a positive amount.
func NewConfirmPaymentSuccessCommand(
	orderID kernel.UUID,
	transactionID string,
	amount int64,
	paidAt time.Time,
) (ConfirmPaymentSuccessCommand, error) {
	cmd := ConfirmPaymentSuccessCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTransactionID(transactionID),
		cmd.setAmount(amount),
	); err != nil {
		return ConfirmPaymentSuccessCommand{}, err
	}
	cmd.paidAt = paidAt

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentSuccessCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentSuccessCommandIsNotConstructed)
}

// OrderID returns the order the payment settles.
func (c ConfirmPaymentSuccessCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TransactionID returns the gateway-side payment identifier.
func (c ConfirmPaymentSuccessCommand) TransactionID() string {
	return c.transactionID
}

// Amount returns the amount the gateway reports as paid.
func (c ConfirmPaymentSuccessCommand) Amount() int64 {
	return c.amount
}

// PaidAt returns the gateway-reported settlement time.
func (c ConfirmPaymentSuccessCommand) PaidAt() time.Time {
	return c.paidAt
}

func (c *ConfirmPaymentSuccessCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmPaymentSuccessCommand) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transactionID")
	}

	c.transactionID = transactionID
	return nil
}

func (c *ConfirmPaymentSuccessCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}
