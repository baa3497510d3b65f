// Package jobs provides the scheduled background tasks of the service,
// built on github.com/robfig/cron/v3. The only job today is the voucher
// expiry sweep; JobManager exists so new jobs share one start/stop surface.
package jobs

import (
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	voucherExpiryJob *VoucherExpiryJob
}

// NewJobManager creates a job manager wired to the given handlers.
func NewJobManager(
	expireVouchersHandler commands.ExpireVouchersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		voucherExpiryJob: NewVoucherExpiryJob(expireVouchersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.voucherExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start voucher expiry job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.voucherExpiryJob.Stop()
}
