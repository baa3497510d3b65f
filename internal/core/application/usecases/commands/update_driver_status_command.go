package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateDriverStatusCommandIsNotConstructed = errors.New(
	"UpdateDriverStatusCommand must be created via NewUpdateDriverStatusCommand constructor",
)

// UpdateDriverStatusCommand toggles a driver between Online and Offline,
// optionally reporting current coordinates. Going Online after a delivery is
// how a Busy driver rejoins matching.
type UpdateDriverStatusCommand struct {
	driverID kernel.UUID
	status   driver.Status
	location *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateDriverStatusCommand creates a validated command. A nil location
// leaves the stored coordinates unchanged.
func NewUpdateDriverStatusCommand(
	driverID kernel.UUID,
	status driver.Status,
	location *kernel.GeoPoint,
) (UpdateDriverStatusCommand, error) {
	if err := errors.Join(
		driverID.Validate(),
		status.Validate(),
	); err != nil {
		return UpdateDriverStatusCommand{}, err
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return UpdateDriverStatusCommand{}, err
		}
	}

	return UpdateDriverStatusCommand{
		driverID: driverID,
		status:   status,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// DriverID returns the driver to update.
func (c *UpdateDriverStatusCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Status returns the requested availability.
func (c *UpdateDriverStatusCommand) Status() driver.Status {
	return c.status
}

// Location returns the reported coordinates, or nil.
func (c *UpdateDriverStatusCommand) Location() *kernel.GeoPoint {
	return c.location
}

// Validate ensures the command was created through the constructor.
func (c *UpdateDriverStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverStatusCommandIsNotConstructed)
}
