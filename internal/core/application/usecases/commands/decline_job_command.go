package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeclineJobCommandIsNotConstructed = errors.New(
	"DeclineJobCommand must be created via NewDeclineJobCommand constructor",
)

// DeclineJobCommand records a driver passing on a job offer.
type DeclineJobCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewDeclineJobCommand creates a validated command.
func NewDeclineJobCommand(orderID kernel.UUID, actor kernel.Actor) (DeclineJobCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
	); err != nil {
		return DeclineJobCommand{}, err
	}
	if !actor.HasRole(kernel.RoleDriver) {
		return DeclineJobCommand{}, errs.NewForbiddenError(actor.String(), "job decline")
	}

	return DeclineJobCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the declined job's order.
func (c *DeclineJobCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the declining driver.
func (c *DeclineJobCommand) Actor() kernel.Actor {
	return c.actor
}

// Validate ensures the command was created through the constructor.
func (c *DeclineJobCommand) Validate() error {
	return c.guard.Validate(ErrDeclineJobCommandIsNotConstructed)
}
