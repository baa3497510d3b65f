package jobs

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// VoucherExpiryJob deactivates vouchers whose validity window has passed.
// Runs every minute; expiry is checked at evaluation time too, so the sweep
// only keeps the stored active flags honest.
type VoucherExpiryJob struct {
	handler commands.ExpireVouchersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewVoucherExpiryJob creates the scheduled voucher expiry sweep.
func NewVoucherExpiryJob(handler commands.ExpireVouchersCommandHandler, logger *slog.Logger) *VoucherExpiryJob {
	return &VoucherExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "voucher_expiry_job"),
	}
}

// Start begins the sweep, running at the top of every minute.
func (j *VoucherExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		command := commands.NewExpireVouchersCommand(time.Now())

		expired, handleErr := j.handler.Handle(ctx, command)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Voucher expiry sweep failed", "error", handleErr)
			return
		}
		if expired > 0 {
			j.logger.InfoContext(ctx, "Deactivated expired vouchers", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Voucher expiry job started (running every minute)")
	return nil
}

// Stop stops the sweep.
func (j *VoucherExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Voucher expiry job stopped")
}
