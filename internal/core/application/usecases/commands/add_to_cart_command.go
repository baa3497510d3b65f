package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddToCartCommandIsNotConstructed = errors.New(
	"AddToCartCommand must be created via NewAddToCartCommand constructor",
)

// AddToCartCommand puts a menu item into the customer's cart. Adding from a
// different restaurant than the cart is keyed to clears the cart first.
type AddToCartCommand struct {
	customerID   kernel.UUID
	restaurantID kernel.UUID
	menuItemID   kernel.UUID
	quantity     int
	notes        string

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates a validated command.
func NewAddToCartCommand(
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	notes string,
) (AddToCartCommand, error) {
	if err := errors.Join(
		customerID.Validate(),
		restaurantID.Validate(),
		menuItemID.Validate(),
	); err != nil {
		return AddToCartCommand{}, err
	}
	if quantity <= 0 {
		return AddToCartCommand{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return AddToCartCommand{
		customerID:   customerID,
		restaurantID: restaurantID,
		menuItemID:   menuItemID,
		quantity:     quantity,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// CustomerID returns the cart owner's ID.
func (c *AddToCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the restaurant the item belongs to.
func (c *AddToCartCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// MenuItemID returns the menu item to add.
func (c *AddToCartCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Quantity returns the requested quantity.
func (c *AddToCartCommand) Quantity() int {
	return c.quantity
}

// Notes returns the preparation notes.
func (c *AddToCartCommand) Notes() string {
	return c.notes
}

// Validate ensures the command was created through the constructor.
func (c *AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}
