package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrStartPreparingCommandIsNotConstructed = errors.New(
	"StartPreparingCommand must be created via NewStartPreparingCommand constructor",
)

// StartPreparingCommand moves a confirmed order into preparation, closing
// the customer's cancellation window.
type StartPreparingCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewStartPreparingCommand creates a validated command.
func NewStartPreparingCommand(orderID kernel.UUID, actor kernel.Actor) (StartPreparingCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
	); err != nil {
		return StartPreparingCommand{}, err
	}

	return StartPreparingCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order to start preparing.
func (c *StartPreparingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting party.
func (c *StartPreparingCommand) Actor() kernel.Actor {
	return c.actor
}

// Validate ensures the command was created through the constructor.
func (c *StartPreparingCommand) Validate() error {
	return c.guard.Validate(ErrStartPreparingCommandIsNotConstructed)
}
