package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/pkg/errs"
)

var errOnlyAcceptCanMarkBusy = errors.New("Busy is entered through job acceptance only")

// UpdateDriverStatusCommandHandler applies a driver's availability change
// and optional location report.
type UpdateDriverStatusCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverStatusCommandHandler creates a handler for driver status
// updates.
func NewUpdateDriverStatusCommandHandler(uowFactory DriverUoWFactory) UpdateDriverStatusCommandHandler {
	return UpdateDriverStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. Drivers may only request Online or Offline;
// Busy is entered through job acceptance.
func (h UpdateDriverStatusCommandHandler) Handle(ctx context.Context, command UpdateDriverStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if command.Status() == driver.Busy {
		return errs.NewValueIsInvalidErrorWithCause("driver status",
			errOnlyAcceptCanMarkBusy)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.DriverRepository().Get(ctx, command.DriverID())
	if err != nil {
		return err
	}

	if command.Location() != nil {
		if err := aggregate.UpdateLocation(*command.Location()); err != nil {
			return err
		}
	}

	switch command.Status() {
	case driver.Online:
		err = aggregate.GoOnline()
	case driver.Offline:
		err = aggregate.GoOffline()
	case driver.Busy, driver.StatusUnknown:
		err = command.Status().Validate()
	default:
		err = command.Status().Validate()
	}
	if err != nil {
		return err
	}

	if err := uow.DriverRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
