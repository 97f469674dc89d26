package commands

import (
	"context"
	"time"
)

// ExpireStalePaymentsCommandHandler cancels online orders abandoned at the
// payment step. Runs on a schedule; each run handles one batch.
type ExpireStalePaymentsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewExpireStalePaymentsCommandHandler creates a handler for the payment
// expiry sweep.
func NewExpireStalePaymentsCommandHandler(uowFactory OrderUoWFactory) ExpireStalePaymentsCommandHandler {
	return ExpireStalePaymentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels stale pending payments and returns how many orders were
// expired.
func (h ExpireStalePaymentsCommandHandler) Handle(ctx context.Context, cmd ExpireStalePaymentsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	stale, err := orderRepo.GetStalePendingPayments(ctx, cmd.Cutoff(), cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	now := time.Now()
	for _, aggregate := range stale {
		if err = aggregate.MarkPaymentFailed(now); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
