package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// AcceptJobCommandHandler claims an order for a driver. The whole acceptance
// is one transaction: validate the driver, assign the order, flip the driver
// to Busy, and append the tracking entry.
//
// Two drivers may race for the same order. The repository's conditional
// assignment guarantees exactly one wins; the loser observes
// order.ErrAlreadyAssigned and nothing of its attempt is persisted.
type AcceptJobCommandHandler struct {
	uowFactory OrderDriverUoWFactory
	publisher  ports.EventPublisher
}

// NewAcceptJobCommandHandler creates a handler for job acceptance.
func NewAcceptJobCommandHandler(uowFactory OrderDriverUoWFactory, publisher ports.EventPublisher) AcceptJobCommandHandler {
	return AcceptJobCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the command.
func (h AcceptJobCommandHandler) Handle(ctx context.Context, command AcceptJobCommand) error {
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

	acceptingDriver, err := uow.DriverRepository().Get(ctx, command.Actor().ID())
	if err != nil {
		return err
	}
	if !acceptingDriver.AvailableForMatching() {
		return errs.NewForbiddenError("driver "+acceptingDriver.ID().String(), "job acceptance")
	}

	aggregate, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err := aggregate.AssignDriver(command.Actor(), time.Now()); err != nil {
		return err
	}

	if err := uow.OrderRepository().AssignDriver(ctx, aggregate); err != nil {
		return err
	}

	if err := acceptingDriver.MarkBusy(); err != nil {
		return err
	}

	if err := uow.DriverRepository().Update(ctx, acceptingDriver); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderEvents(ctx, h.publisher, aggregate)
	return nil
}
