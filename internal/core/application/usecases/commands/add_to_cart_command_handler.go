package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// ErrMenuItemUnavailable is returned when the referenced menu item is not
// currently available for order. It is the same condition the pricing engine
// reports at checkout, so both paths classify identically.
var ErrMenuItemUnavailable = services.ErrItemUnavailable

// AddToCartCommandHandler loads the customer's cart, verifies the menu item
// through the restaurant gateway, and saves the updated cart. A missing cart
// is created on the fly.
type AddToCartCommandHandler struct {
	uowFactory  CartUoWFactory
	restaurants ports.RestaurantGateway
}

// NewAddToCartCommandHandler creates a handler for cart additions.
func NewAddToCartCommandHandler(
	uowFactory CartUoWFactory,
	restaurants ports.RestaurantGateway,
) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory:  uowFactory,
		restaurants: restaurants,
	}
}

// Handle processes the command. The menu item is fetched live so the cart
// always holds a current price snapshot; an unavailable item is rejected.
func (h AddToCartCommandHandler) Handle(ctx context.Context, command AddToCartCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	menuItem, err := h.restaurants.GetMenuItem(ctx, command.MenuItemID())
	if err != nil {
		return err
	}
	if !menuItem.IsAvailable {
		return ErrMenuItemUnavailable
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
	if errors.Is(err, errs.ErrObjectNotFound) {
		customerCart, err = cart.NewCart(kernel.NewUUID(), command.CustomerID())
	}
	if err != nil {
		return err
	}

	addErr := customerCart.AddItem(command.RestaurantID(), cart.Item{
		MenuItemID: menuItem.ID,
		Name:       menuItem.Name,
		UnitPrice:  menuItem.Price,
		Quantity:   command.Quantity(),
		Notes:      command.Notes(),
	})
	if addErr != nil {
		return addErr
	}

	if err := cartRepo.Save(ctx, customerCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
