package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// applyOrderTransition runs one authorized status transition in its own
// transaction: load the order, apply the mutation, persist, commit, then
// publish the recorded events. Every lifecycle handler that touches only the
// order aggregate goes through this path so the read-validate-write-append
// sequence is atomic everywhere.
func applyOrderTransition(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	orderID kernel.UUID,
	transition func(o *order.Order, now time.Time) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err := transition(aggregate, time.Now()); err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderEvents(ctx, publisher, aggregate)
	return nil
}

// publishOrderEvents sends the aggregate's recorded events after commit.
// Publish failures are logged and never fail the business operation.
func publishOrderEvents(ctx context.Context, publisher ports.EventPublisher, aggregate *order.Order) {
	events := aggregate.Events()
	if len(events) == 0 {
		return
	}

	if err := publisher.Publish(ctx, events); err != nil {
		slog.Warn("failed to publish order events",
			slog.String("order", aggregate.Number()),
			slog.Any("error", err))
		return
	}
	aggregate.ClearEvents()
}
