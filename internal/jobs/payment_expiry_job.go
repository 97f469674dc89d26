package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentExpiryJob cancels online orders whose payment never arrived.
// An order abandoned at the gateway stays Pending/PaymentPending forever
// without this sweep; expiring it keeps the listing honest. Pre-confirmation
// orders hold no stock, so cancelling them needs no inventory compensation.
type PaymentExpiryJob struct {
	handler   commands.ExpireStalePaymentsCommandHandler
	maxAge    time.Duration
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPaymentExpiryJob creates a job that sweeps stale pending payments.
// maxAge is how long an unpaid online order may stay pending; batchSize
// bounds the work done per sweep.
func NewPaymentExpiryJob(
	handler commands.ExpireStalePaymentsCommandHandler,
	maxAge time.Duration,
	batchSize int,
	logger *slog.Logger,
) *PaymentExpiryJob {
	return &PaymentExpiryJob{
		handler:   handler,
		maxAge:    maxAge,
		batchSize: batchSize,
		cron:      cron.New(),
		logger:    logger.With("component", "payment_expiry_job"),
	}
}

// Start begins the payment expiry job, sweeping once a minute.
func (j *PaymentExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireStalePaymentsCommand(time.Now().Add(-j.maxAge), j.batchSize)
		if err != nil {
			j.logger.ErrorContext(ctx, "Payment expiry job misconfigured", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Payment expiry job failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale pending payments", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment expiry job started (running every minute)")
	return nil
}

// Stop stops the payment expiry job.
func (j *PaymentExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment expiry job stopped")
}
