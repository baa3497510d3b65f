package order

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrDestinationIsNotConstructed is returned when a Destination was not
// created via NewDestination.
var ErrDestinationIsNotConstructed = errors.New("Destination must be created via NewDestination")

// Destination is where the order is delivered: a human-readable address, the
// geographic point used for distance calculations, and an optional note for
// the driver.
type Destination struct { //nolint:recvcheck //using for validation
	address  string
	location kernel.GeoPoint
	note     string

	guard guard.ConstructorGuard
}

// NewDestination creates a delivery destination. Address must be non-empty
// and the location a constructed GeoPoint.
func NewDestination(address string, location kernel.GeoPoint, note string) (Destination, error) {
	d := Destination{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setAddress(address),
		d.setLocation(location),
	); err != nil {
		return Destination{}, err
	}

	return d, nil
}

// Validate ensures the Destination was created through the constructor.
func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}

// Address returns the delivery address.
func (d Destination) Address() string {
	return d.address
}

// Location returns the geographic point of the destination.
func (d Destination) Location() kernel.GeoPoint {
	return d.location
}

// Note returns the delivery note for the driver.
func (d Destination) Note() string {
	return d.note
}

func (d *Destination) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	d.address = address
	return nil
}

func (d *Destination) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = location
	return nil
}
