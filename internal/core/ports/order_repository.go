// Package ports defines the driven-side contracts of the core: repositories,
// the unit of work, the restaurant gateway, and the event publisher. Adapters
// implement these interfaces; the core never imports an adapter.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order with its items and initial tracking entry.
	// Fails with order.ErrOrderNumberTaken when the generated order number
	// collides with an existing one; callers retry with a fresh number.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, appending any new
	// tracking entries.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier, including items and
	// tracking history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetReadyForPickup retrieves unassigned orders in ReadyForPickup
	// status, oldest first, up to limit.
	GetReadyForPickup(ctx context.Context, limit int) ([]*order.Order, error)

	// AssignDriver atomically claims the order for a driver: the update
	// applies only while no driver is assigned. Fails with
	// order.ErrAlreadyAssigned when another driver won the race.
	AssignDriver(ctx context.Context, aggregate *order.Order) error
}
