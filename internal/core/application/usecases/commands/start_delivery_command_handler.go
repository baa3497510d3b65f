package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// StartDeliveryCommandHandler moves a picked-up order to Delivering for the
// assigned driver.
type StartDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewStartDeliveryCommandHandler creates a handler for starting delivery.
func NewStartDeliveryCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the command.
func (h StartDeliveryCommandHandler) Handle(ctx context.Context, command StartDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return applyOrderTransition(ctx, h.uowFactory, h.publisher, command.OrderID(),
		func(o *order.Order, now time.Time) error {
			return o.StartDelivering(command.Actor(), now)
		})
}
