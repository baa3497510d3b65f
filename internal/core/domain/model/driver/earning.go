package driver

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrEarningIsNotConstructed is returned when an Earning was not created via
// NewEarning or RestoreEarning.
var ErrEarningIsNotConstructed = errors.New("Earning must be created via NewEarning or RestoreEarning")

// EarningType classifies a ledger entry.
type EarningType int

const (
	// EarningTypeUnknown represents an invalid or undefined type.
	EarningTypeUnknown EarningType = iota

	// EarningDelivery is the fee for a completed delivery.
	EarningDelivery

	// EarningTip is a customer tip.
	EarningTip

	// EarningBonus is a promotional or incentive payment.
	EarningBonus
)

func getEarningTypeStrings() map[EarningType]string {
	return map[EarningType]string{
		EarningTypeUnknown: "Unknown",
		EarningDelivery:    "Delivery",
		EarningTip:         "Tip",
		EarningBonus:       "Bonus",
	}
}

// Validate checks if the EarningType value is one of the defined types.
func (t EarningType) Validate() error {
	if t <= EarningTypeUnknown || t > EarningBonus {
		return errs.NewValueIsInvalidErrorWithCause("earning type",
			fmt.Errorf("%d is not a valid earning type", t))
	}
	return nil
}

// String returns the canonical name of the earning type.
// Implements fmt.Stringer; safe on any EarningType value.
func (t EarningType) String() string {
	if str, ok := getEarningTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// Earning is one append-only ledger row. The sum of a driver's earnings is
// the provenance of the wallet balance; entries are never edited or deleted.
type Earning struct { //nolint:recvcheck //using for validation
	id          kernel.UUID
	driverID    kernel.UUID
	orderID     *kernel.UUID
	etype       EarningType
	amount      kernel.Money
	description string
	earnedAt    time.Time

	guard guard.ConstructorGuard
}

// NewEarning creates a ledger entry. The order reference is optional since
// tips and bonuses may not be tied to a delivery.
func NewEarning(
	id kernel.UUID,
	driverID kernel.UUID,
	orderID *kernel.UUID,
	etype EarningType,
	amount kernel.Money,
	description string,
	earnedAt time.Time,
) (Earning, error) {
	earning := Earning{
		amount:      amount,
		description: description,
		earnedAt:    earnedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		earning.setID(id),
		earning.setDriverID(driverID),
		earning.setOrderID(orderID),
		earning.setType(etype),
	); err != nil {
		return Earning{}, err
	}

	return earning, nil
}

// RestoreEarning reconstructs a ledger entry from persistence.
func RestoreEarning(
	id kernel.UUID,
	driverID kernel.UUID,
	orderID *kernel.UUID,
	etype EarningType,
	amount kernel.Money,
	description string,
	earnedAt time.Time,
) (Earning, error) {
	return NewEarning(id, driverID, orderID, etype, amount, description, earnedAt)
}

// Validate ensures the Earning was created through a constructor.
func (e Earning) Validate() error {
	return e.guard.Validate(ErrEarningIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (e Earning) ID() kernel.UUID {
	return e.id
}

// DriverID returns the owning driver's ID.
func (e Earning) DriverID() kernel.UUID {
	return e.driverID
}

// OrderID returns the related order's ID, or nil.
func (e Earning) OrderID() *kernel.UUID {
	return e.orderID
}

// Type returns the earning classification.
func (e Earning) Type() EarningType {
	return e.etype
}

// Amount returns the credited amount.
func (e Earning) Amount() kernel.Money {
	return e.amount
}

// Description returns the display description of the entry.
func (e Earning) Description() string {
	return e.description
}

// EarnedAt returns when the amount was earned.
func (e Earning) EarnedAt() time.Time {
	return e.earnedAt
}

func (e *Earning) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Earning) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.driverID = id
	return nil
}

func (e *Earning) setOrderID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	orderID := *id
	e.orderID = &orderID
	return nil
}

func (e *Earning) setType(etype EarningType) error {
	if err := etype.Validate(); err != nil {
		return err
	}
	e.etype = etype
	return nil
}
