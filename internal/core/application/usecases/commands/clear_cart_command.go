package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand removes the customer's cart entirely.
type ClearCartCommand struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a validated command.
func NewClearCartCommand(customerID kernel.UUID) (ClearCartCommand, error) {
	if err := customerID.Validate(); err != nil {
		return ClearCartCommand{}, err
	}

	return ClearCartCommand{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// CustomerID returns the cart owner's ID.
func (c *ClearCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Validate ensures the command was created through the constructor.
func (c *ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}
