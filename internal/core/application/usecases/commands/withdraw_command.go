package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrWithdrawCommandIsNotConstructed = errors.New(
	"WithdrawCommand must be created via NewWithdrawCommand constructor",
)

// WithdrawCommand debits a driver's wallet.
type WithdrawCommand struct {
	driverID kernel.UUID
	amount   kernel.Money

	guard guard.ConstructorGuard
}

// NewWithdrawCommand creates a validated command. The amount must be
// positive.
func NewWithdrawCommand(driverID kernel.UUID, amount kernel.Money) (WithdrawCommand, error) {
	if err := driverID.Validate(); err != nil {
		return WithdrawCommand{}, err
	}
	if amount.IsZero() {
		return WithdrawCommand{}, errs.NewValueIsRequiredError("withdrawal amount")
	}

	return WithdrawCommand{
		driverID: driverID,
		amount:   amount,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// DriverID returns the withdrawing driver.
func (c *WithdrawCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Amount returns the requested amount.
func (c *WithdrawCommand) Amount() kernel.Money {
	return c.amount
}

// Validate ensures the command was created through the constructor.
func (c *WithdrawCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawCommandIsNotConstructed)
}
