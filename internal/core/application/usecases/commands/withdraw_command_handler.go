package commands

import (
	"context"
)

// WithdrawCommandHandler debits a driver's wallet balance. The ledger keeps
// only credits; withdrawals reduce the running balance directly and fail
// with driver.ErrInsufficientBalance when it would go negative.
type WithdrawCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewWithdrawCommandHandler creates a handler for wallet withdrawals.
func NewWithdrawCommandHandler(uowFactory DriverUoWFactory) WithdrawCommandHandler {
	return WithdrawCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
func (h WithdrawCommandHandler) Handle(ctx context.Context, command WithdrawCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.DriverRepository().Get(ctx, command.DriverID())
	if err != nil {
		return err
	}

	if err := aggregate.Withdraw(command.Amount()); err != nil {
		return err
	}

	if err := uow.DriverRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
