package commands

import (
	"context"
	"log/slog"
)

// ExpireVouchersCommandHandler deactivates expired vouchers in one
// transaction.
type ExpireVouchersCommandHandler struct {
	uowFactory VoucherUoWFactory
}

// NewExpireVouchersCommandHandler creates a handler for voucher expiry.
func NewExpireVouchersCommandHandler(uowFactory VoucherUoWFactory) ExpireVouchersCommandHandler {
	return ExpireVouchersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the number of vouchers
// deactivated.
func (h ExpireVouchersCommandHandler) Handle(ctx context.Context, command ExpireVouchersCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.VoucherRepository()

	expired, err := repo.GetExpiredActive(ctx, command.Now())
	if err != nil {
		return 0, err
	}

	for _, aggregate := range expired {
		if err := aggregate.Deactivate(); err != nil {
			return 0, err
		}
		if err := repo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	if len(expired) > 0 {
		slog.Info("deactivated expired vouchers", slog.Int("count", len(expired)))
	}
	return len(expired), nil
}
