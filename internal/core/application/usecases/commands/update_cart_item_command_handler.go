package commands

import (
	"context"
)

// UpdateCartItemCommandHandler applies a quantity change to the customer's
// cart. When the change empties the cart, the cart is deleted rather than
// saved empty.
type UpdateCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartItemCommandHandler creates a handler for cart quantity
// changes.
func NewUpdateCartItemCommandHandler(uowFactory CartUoWFactory) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
func (h UpdateCartItemCommandHandler) Handle(ctx context.Context, command UpdateCartItemCommand) error {
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

	cartRepo := uow.CartRepository()

	customerCart, err := cartRepo.GetByCustomer(ctx, command.CustomerID())
	if err != nil {
		return err
	}

	if err := customerCart.UpdateItemQuantity(command.MenuItemID(), command.Quantity()); err != nil {
		return err
	}

	if customerCart.IsEmpty() {
		if err := cartRepo.Delete(ctx, command.CustomerID()); err != nil {
			return err
		}
	} else if err := cartRepo.Save(ctx, customerCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
