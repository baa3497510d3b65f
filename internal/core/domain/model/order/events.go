package order

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

// Event is a domain event recorded by the Order aggregate when its status
// changes. Events accumulate on the aggregate during a use case and are
// published by the application layer after the transaction commits.
type Event struct {
	OrderID     kernel.UUID
	OrderNumber string
	Status      Status
	Description string
	OccurredAt  time.Time
}

// Name returns the event name used as the message key on the wire,
// e.g. "order.confirmed".
func (e Event) Name() string {
	switch e.Status {
	case Pending:
		return "order.placed"
	case Confirmed:
		return "order.confirmed"
	case Preparing:
		return "order.preparing"
	case ReadyForPickup:
		return "order.ready_for_pickup"
	case PickedUp:
		return "order.picked_up"
	case Delivering:
		return "order.delivering"
	case Delivered:
		return "order.delivered"
	case Cancelled:
		return "order.cancelled"
	case StatusUnknown:
		return "order.unknown"
	default:
		return "order.unknown"
	}
}
