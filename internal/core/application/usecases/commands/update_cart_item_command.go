package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand changes a cart line's quantity. A quantity of zero
// removes the line.
type UpdateCartItemCommand struct {
	customerID kernel.UUID
	menuItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewUpdateCartItemCommand creates a validated command.
func NewUpdateCartItemCommand(customerID kernel.UUID, menuItemID kernel.UUID, quantity int) (UpdateCartItemCommand, error) {
	if err := errors.Join(
		customerID.Validate(),
		menuItemID.Validate(),
	); err != nil {
		return UpdateCartItemCommand{}, err
	}
	if quantity < 0 {
		return UpdateCartItemCommand{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}

	return UpdateCartItemCommand{
		customerID: customerID,
		menuItemID: menuItemID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// CustomerID returns the cart owner's ID.
func (c *UpdateCartItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// MenuItemID returns the cart line to change.
func (c *UpdateCartItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Quantity returns the new quantity; zero removes the line.
func (c *UpdateCartItemCommand) Quantity() int {
	return c.quantity
}

// Validate ensures the command was created through the constructor.
func (c *UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}
