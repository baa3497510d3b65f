package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// EventPublisher delivers order domain events to the notification
// collaborator. Publishing happens after the owning transaction commits;
// a publish failure is logged, never rolled back into the business
// operation.
type EventPublisher interface {
	// Publish sends the given events. Implementations must tolerate an
	// empty slice.
	Publish(ctx context.Context, events []order.Event) error
}
