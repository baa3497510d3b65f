package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// StartPreparingCommandHandler moves a confirmed order to Preparing on
// behalf of the restaurant's merchant.
type StartPreparingCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewStartPreparingCommandHandler creates a handler for starting
// preparation.
func NewStartPreparingCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) StartPreparingCommandHandler {
	return StartPreparingCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the command.
func (h StartPreparingCommandHandler) Handle(ctx context.Context, command StartPreparingCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return applyOrderTransition(ctx, h.uowFactory, h.publisher, command.OrderID(),
		func(o *order.Order, now time.Time) error {
			return o.StartPreparing(command.Actor(), now)
		})
}
