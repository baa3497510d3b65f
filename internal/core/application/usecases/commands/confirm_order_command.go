package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand accepts a pending order on behalf of the restaurant.
type ConfirmOrderCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a validated command.
func NewConfirmOrderCommand(orderID kernel.UUID, actor kernel.Actor) (ConfirmOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return ConfirmOrderCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order to confirm.
func (c *ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting party.
func (c *ConfirmOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Validate ensures the command was created through the constructor.
func (c *ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}
