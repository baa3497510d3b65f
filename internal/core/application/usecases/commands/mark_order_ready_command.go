package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrMarkOrderReadyCommandIsNotConstructed = errors.New(
	"MarkOrderReadyCommand must be created via NewMarkOrderReadyCommand constructor",
)

// MarkOrderReadyCommand marks an order ready for pickup, making it visible
// to drivers as a job.
type MarkOrderReadyCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewMarkOrderReadyCommand creates a validated command.
func NewMarkOrderReadyCommand(orderID kernel.UUID, actor kernel.Actor) (MarkOrderReadyCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
	); err != nil {
		return MarkOrderReadyCommand{}, err
	}

	return MarkOrderReadyCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order to mark ready.
func (c *MarkOrderReadyCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting party.
func (c *MarkOrderReadyCommand) Actor() kernel.Actor {
	return c.actor
}

// Validate ensures the command was created through the constructor.
func (c *MarkOrderReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReadyCommandIsNotConstructed)
}
