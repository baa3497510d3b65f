package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions to ensure orders follow the correct
// business workflow.
//
// State transitions:
//
//	Pending -> Confirmed -> Preparing -> ReadyForPickup -> PickedUp -> Delivering -> Delivered
//	   │           │
//	   └───────────┴──> Cancelled   (only while status < Preparing)
//
// The numeric ordering of the constants is meaningful: the cancellation
// window is expressed as a comparison against Preparing.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status set at checkout, awaiting restaurant
	// confirmation.
	Pending

	// Confirmed indicates the restaurant accepted the order.
	Confirmed

	// Preparing indicates the kitchen started working on the order.
	// From this point on the customer can no longer cancel.
	Preparing

	// ReadyForPickup indicates the order awaits a driver. Orders in this
	// status with no assigned driver are offered as jobs.
	ReadyForPickup

	// PickedUp indicates a driver claimed the job and collected the order.
	PickedUp

	// Delivering indicates the driver is on the way to the customer.
	Delivering

	// Delivered is the successful final state.
	Delivered

	// Cancelled is the final state of an order cancelled by the customer
	// before preparation started.
	Cancelled
)

var (
	// ErrInvalidTransition is the sentinel for all state machine rule
	// violations; use errors.Is to classify.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrCancellationWindowClosed is returned when a cancellation is
	// attempted once preparation started (status >= Preparing).
	ErrCancellationWindowClosed = errors.New("order can no longer be cancelled")
)

// InvalidTransitionError reports a rejected transition with both endpoints.
// Unwraps to ErrInvalidTransition.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order status transition: %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func newInvalidTransitionError(from Status, to Status) error {
	return &InvalidTransitionError{From: from, To: to}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "Unknown",
		Pending:        "Pending",
		Confirmed:      "Confirmed",
		Preparing:      "Preparing",
		ReadyForPickup: "ReadyForPickup",
		PickedUp:       "PickedUp",
		Delivering:     "Delivering",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		Confirmed:      "Confirmed",
		Preparing:      "Preparing",
		ReadyForPickup: "ReadyForPickup",
		PickedUp:       "PickedUp",
		Delivering:     "Delivering",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
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

// IsFinal reports whether no further transitions are possible.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// Confirm transitions Pending -> Confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, newInvalidTransitionError(s, Confirmed)
	}
	return Confirmed, nil
}

// StartPreparing transitions Confirmed -> Preparing.
func (s Status) StartPreparing() (Status, error) {
	if s != Confirmed {
		return 0, newInvalidTransitionError(s, Preparing)
	}
	return Preparing, nil
}

// MarkReady transitions to ReadyForPickup. Both Preparing and Confirmed are
// accepted as source states: a restaurant may mark an order ready without an
// explicit preparing step.
func (s Status) MarkReady() (Status, error) {
	if s != Preparing && s != Confirmed {
		return 0, newInvalidTransitionError(s, ReadyForPickup)
	}
	return ReadyForPickup, nil
}

// PickUp transitions ReadyForPickup -> PickedUp. Performed by the driver
// accepting the job.
func (s Status) PickUp() (Status, error) {
	if s != ReadyForPickup {
		return 0, newInvalidTransitionError(s, PickedUp)
	}
	return PickedUp, nil
}

// StartDelivering transitions PickedUp -> Delivering.
func (s Status) StartDelivering() (Status, error) {
	if s != PickedUp {
		return 0, newInvalidTransitionError(s, Delivering)
	}
	return Delivering, nil
}

// CompleteDelivery transitions Delivering -> Delivered, the successful final
// state.
func (s Status) CompleteDelivery() (Status, error) {
	if s != Delivering {
		return 0, newInvalidTransitionError(s, Delivered)
	}
	return Delivered, nil
}

// Cancel transitions to Cancelled. Allowed only while preparation has not
// started; afterwards it fails with ErrCancellationWindowClosed.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s >= Preparing {
		return 0, ErrCancellationWindowClosed
	}
	return Cancelled, nil
}
