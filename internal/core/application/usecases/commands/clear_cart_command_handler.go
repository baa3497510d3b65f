package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/pkg/errs"
)

// ClearCartCommandHandler deletes the customer's cart. Clearing an absent
// cart succeeds, the operation is idempotent.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
func (h ClearCartCommandHandler) Handle(ctx context.Context, command ClearCartCommand) error {
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

	err := uow.CartRepository().Delete(ctx, command.CustomerID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	return uow.Commit(ctx)
}
