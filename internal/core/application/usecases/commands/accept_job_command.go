package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrAcceptJobCommandIsNotConstructed = errors.New(
	"AcceptJobCommand must be created via NewAcceptJobCommand constructor",
)

// AcceptJobCommand claims a ready-for-pickup order for the accepting driver.
type AcceptJobCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewAcceptJobCommand creates a validated command. The actor must hold the
// driver role.
func NewAcceptJobCommand(orderID kernel.UUID, actor kernel.Actor) (AcceptJobCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
	); err != nil {
		return AcceptJobCommand{}, err
	}
	if !actor.HasRole(kernel.RoleDriver) {
		return AcceptJobCommand{}, errs.NewForbiddenError(actor.String(), "job acceptance")
	}

	return AcceptJobCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order to claim.
func (c *AcceptJobCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the accepting driver.
func (c *AcceptJobCommand) Actor() kernel.Actor {
	return c.actor
}

// Validate ensures the command was created through the constructor.
func (c *AcceptJobCommand) Validate() error {
	return c.guard.Validate(ErrAcceptJobCommandIsNotConstructed)
}
