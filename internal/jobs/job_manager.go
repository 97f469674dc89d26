// Package jobs provides scheduled background tasks for the storefront.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager, which provides a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(expireHandler, maxAge, batchSize, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	paymentExpiryJob *PaymentExpiryJob
}

// NewJobManager creates a job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	expireHandler commands.ExpireStalePaymentsCommandHandler,
	paymentMaxAge time.Duration,
	expiryBatchSize int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		paymentExpiryJob: NewPaymentExpiryJob(expireHandler, paymentMaxAge, expiryBatchSize, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment expiry job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.paymentExpiryJob.Stop()
}
