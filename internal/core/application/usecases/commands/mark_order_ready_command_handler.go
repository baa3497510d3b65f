package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// MarkOrderReadyCommandHandler moves an order to ReadyForPickup on behalf of
// the restaurant's merchant.
type MarkOrderReadyCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewMarkOrderReadyCommandHandler creates a handler for marking orders
// ready.
func NewMarkOrderReadyCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the command.
func (h MarkOrderReadyCommandHandler) Handle(ctx context.Context, command MarkOrderReadyCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return applyOrderTransition(ctx, h.uowFactory, h.publisher, command.OrderID(),
		func(o *order.Order, now time.Time) error {
			return o.MarkReady(command.Actor(), now)
		})
}
