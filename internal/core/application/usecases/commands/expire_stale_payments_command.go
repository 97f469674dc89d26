package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrExpireStalePaymentsCommandIsNotConstructed = errors.New(
	"ExpireStalePaymentsCommand must be created via NewExpireStalePaymentsCommand constructor",
)

// ExpireStalePaymentsCommand represents a sweep for online orders whose
// payment has been pending longer than the allowed window. Such orders
// hold no stock, so cancelling them is always safe.
type ExpireStalePaymentsCommand struct { //nolint:recvcheck //using for validation
	cutoff    time.Time
	batchSize int

	guard guard.ConstructorGuard
}

// NewExpireStalePaymentsCommand creates a command that cancels online
// orders still pending payment since before the cutoff, at most batchSize
// per run.
func NewExpireStalePaymentsCommand(cutoff time.Time, batchSize int) (ExpireStalePaymentsCommand, error) {
	cmd := ExpireStalePaymentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCutoff(cutoff),
		cmd.setBatchSize(batchSize),
	); err != nil {
		return ExpireStalePaymentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStalePaymentsCommand) Validate() error {
	return c.guard.Validate(ErrExpireStalePaymentsCommandIsNotConstructed)
}

// Cutoff returns the staleness boundary. Orders created before it expire.
func (c ExpireStalePaymentsCommand) Cutoff() time.Time {
	return c.cutoff
}

// BatchSize returns the maximum number of orders cancelled per run.
func (c ExpireStalePaymentsCommand) BatchSize() int {
	return c.batchSize
}

func (c *ExpireStalePaymentsCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errs.NewValueIsRequiredError("cutoff")
	}

	c.cutoff = cutoff
	return nil
}

func (c *ExpireStalePaymentsCommand) setBatchSize(batchSize int) error {
	if batchSize <= 0 {
		return errs.NewValueIsInvalidError("batchSize")
	}

	c.batchSize = batchSize
	return nil
}
