package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand finishes a delivery: the order becomes Delivered
// and the driver is paid.
type CompleteDeliveryCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a validated command.
func NewCompleteDeliveryCommand(orderID kernel.UUID, actor kernel.Actor) (CompleteDeliveryCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return CompleteDeliveryCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the delivered order.
func (c *CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the delivering driver.
func (c *CompleteDeliveryCommand) Actor() kernel.Actor {
	return c.actor
}

// Validate ensures the command was created through the constructor.
func (c *CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}
