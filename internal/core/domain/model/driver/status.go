package driver

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents a driver's availability.
//
// Drivers toggle between Offline and Online themselves. Busy is entered when
// the driver accepts a job and is left only via an explicit status update,
// not automatically on delivery completion; the driver decides when to take
// the next job.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Offline means the driver is not working and receives no job offers.
	Offline

	// Online means the driver is available for matching.
	Online

	// Busy means the driver is carrying an order.
	Busy
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Offline:       "Offline",
		Online:        "Online",
		Busy:          "Busy",
	}
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > Busy {
		return errs.NewValueIsInvalidErrorWithCause("driver status",
			fmt.Errorf("%d is not a valid driver status", s))
	}
	return nil
}

// String returns the canonical name of the status.
// Implements fmt.Stringer; safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
