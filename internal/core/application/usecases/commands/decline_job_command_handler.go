package commands

import (
	"context"
	"log/slog"
)

// DeclineJobCommandHandler records a declined job offer. Declining changes
// no state: the order stays available for other drivers and the offer
// timeout is advisory only. The decline is logged for demand analysis.
type DeclineJobCommandHandler struct{}

// NewDeclineJobCommandHandler creates a handler for job declines.
func NewDeclineJobCommandHandler() DeclineJobCommandHandler {
	return DeclineJobCommandHandler{}
}

// Handle processes the command.
func (h DeclineJobCommandHandler) Handle(_ context.Context, command DeclineJobCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	slog.Info("driver declined job offer",
		slog.String("driver", command.Actor().ID().String()),
		slog.String("order_id", command.OrderID().String()))
	return nil
}
