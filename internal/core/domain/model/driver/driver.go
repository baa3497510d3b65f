package driver

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver instance was not
	// created through NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

	// ErrDriverNotApproved is returned when an unapproved driver tries to go
	// online.
	ErrDriverNotApproved = errors.New("driver is not approved")

	// ErrInsufficientBalance is returned when a withdrawal exceeds the
	// wallet balance.
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
)

// Driver is the aggregate root for a delivery driver: approval, availability,
// last known location, wallet balance, and delivery statistics.
//
// A driver is available for matching iff approved, Online, and with a known
// location. Accepting a job makes the driver Busy; the driver returns Online
// only via an explicit status update, so completing a delivery does not by
// itself make the driver available again.
//
// The wallet is a running total: earnings credit it, withdrawals debit it,
// and the append-only Earning ledger provides the provenance.
type Driver struct {
	id              kernel.UUID
	name            string
	phone           string
	isApproved      bool
	status          Status
	location        *kernel.GeoPoint
	wallet          kernel.Money
	rating          float64
	totalDeliveries int

	guard guard.ConstructorGuard
}

// NewDriver creates an unapproved, offline driver with an empty wallet and
// no known location.
func NewDriver(id kernel.UUID, name string, phone string) (*Driver, error) {
	driver := &Driver{
		status: Offline,
		rating: 5.0,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(
	id kernel.UUID,
	name string,
	phone string,
	isApproved bool,
	status Status,
	location *kernel.GeoPoint,
	wallet kernel.Money,
	rating float64,
	totalDeliveries int,
) (*Driver, error) {
	driver, err := NewDriver(id, name, phone)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		driver.setStatus(status),
		driver.setLocation(location),
		driver.setRating(rating),
		driver.setTotalDeliveries(totalDeliveries),
	); err != nil {
		return nil, err
	}

	driver.isApproved = isApproved
	driver.wallet = wallet
	return driver, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's contact phone number.
func (d *Driver) Phone() string {
	return d.phone
}

// IsApproved returns the approval flag set by the admin collaborator.
func (d *Driver) IsApproved() bool {
	return d.isApproved
}

// Status returns the driver's availability status.
func (d *Driver) Status() Status {
	return d.status
}

// Location returns the last reported coordinates, or nil before the first
// location update.
func (d *Driver) Location() *kernel.GeoPoint {
	return d.location
}

// Wallet returns the current wallet balance.
func (d *Driver) Wallet() kernel.Money {
	return d.wallet
}

// Rating returns the cumulative rating.
func (d *Driver) Rating() float64 {
	return d.rating
}

// TotalDeliveries returns the number of completed deliveries.
func (d *Driver) TotalDeliveries() int {
	return d.totalDeliveries
}

// AvailableForMatching reports whether the driver can be offered jobs:
// approved, Online, and with a known location.
func (d *Driver) AvailableForMatching() bool {
	return d.isApproved && d.status == Online && d.location != nil
}

// Approve marks the driver as approved for work.
func (d *Driver) Approve() error {
	if err := d.Validate(); err != nil {
		return err
	}
	d.isApproved = true
	return nil
}

// GoOnline makes the driver available for matching. Fails for unapproved
// drivers.
func (d *Driver) GoOnline() error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !d.isApproved {
		return ErrDriverNotApproved
	}
	d.status = Online
	return nil
}

// GoOffline takes the driver out of matching.
func (d *Driver) GoOffline() error {
	if err := d.Validate(); err != nil {
		return err
	}
	d.status = Offline
	return nil
}

// MarkBusy records that the driver accepted a job.
func (d *Driver) MarkBusy() error {
	if err := d.Validate(); err != nil {
		return err
	}
	d.status = Busy
	return nil
}

// UpdateLocation records the driver's current coordinates.
func (d *Driver) UpdateLocation(location kernel.GeoPoint) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = &location
	return nil
}

// CreditWallet adds an earned amount to the wallet balance. The matching
// ledger entry is created separately by the use case.
func (d *Driver) CreditWallet(amount kernel.Money) error {
	if err := d.Validate(); err != nil {
		return err
	}
	d.wallet = d.wallet.Add(amount)
	return nil
}

// Withdraw debits the wallet. Fails with ErrInsufficientBalance when the
// requested amount exceeds the balance, and rejects zero amounts.
func (d *Driver) Withdraw(amount kernel.Money) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if amount.IsZero() {
		return errs.NewValueIsRequiredError("withdrawal amount")
	}

	remaining, err := d.wallet.Sub(amount)
	if err != nil {
		return ErrInsufficientBalance
	}

	d.wallet = remaining
	return nil
}

// RecordDelivery increments the completed delivery counter.
func (d *Driver) RecordDelivery() error {
	if err := d.Validate(); err != nil {
		return err
	}
	d.totalDeliveries++
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("driver name")
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	d.phone = phone
	return nil
}

func (d *Driver) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Driver) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	point := *location
	d.location = &point
	return nil
}

func (d *Driver) setRating(rating float64) error {
	if rating < 0 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", fmt.Sprintf("%.2f", rating), 0, 5)
	}
	d.rating = rating
	return nil
}

func (d *Driver) setTotalDeliveries(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total deliveries",
			fmt.Errorf("%d is negative", count))
	}
	d.totalDeliveries = count
	return nil
}
