package commands

import (
	"context"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// CompleteDeliveryCommandHandler finishes a delivery in one transaction:
// the order transitions to Delivered, the driver's wallet is credited, an
// earnings ledger row is appended, and the delivery counter increments.
//
// The driver stays Busy afterwards; going back Online is an explicit status
// update by the driver.
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderDriverUoWFactory
	publisher  ports.EventPublisher
	matcher    services.JobMatcher
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery
// completion.
func NewCompleteDeliveryCommandHandler(uowFactory OrderDriverUoWFactory, publisher ports.EventPublisher) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		matcher:    services.NewJobMatcher(),
	}
}

// Handle processes the command.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err := aggregate.CompleteDelivery(command.Actor(), now); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	deliveringDriver, err := uow.DriverRepository().Get(ctx, command.Actor().ID())
	if err != nil {
		return err
	}

	payout := h.matcher.EstimateEarnings(aggregate.Pricing().Total())

	orderID := aggregate.ID()
	earning, err := driver.NewEarning(
		kernel.NewUUID(),
		deliveringDriver.ID(),
		&orderID,
		driver.EarningDelivery,
		payout,
		fmt.Sprintf("Delivery fee for order %s", aggregate.Number()),
		now,
	)
	if err != nil {
		return err
	}

	if err := uow.DriverRepository().AddEarning(ctx, earning); err != nil {
		return err
	}

	if err := deliveringDriver.CreditWallet(payout); err != nil {
		return err
	}
	if err := deliveringDriver.RecordDelivery(); err != nil {
		return err
	}

	if err := uow.DriverRepository().Update(ctx, deliveringDriver); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderEvents(ctx, h.publisher, aggregate)
	return nil
}
