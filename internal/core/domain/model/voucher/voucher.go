package voucher

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrVoucherIsNotConstructed is returned when a Voucher instance was not
	// created through NewVoucher or RestoreVoucher.
	ErrVoucherIsNotConstructed = errors.New("Voucher must be created via NewVoucher or RestoreVoucher")

	// ErrVoucherInactive is returned when the voucher is disabled or the
	// current time is outside its validity window.
	ErrVoucherInactive = errors.New("voucher is not active")

	// ErrVoucherExhausted is returned when the usage cap has been reached.
	ErrVoucherExhausted = errors.New("voucher usage limit reached")

	// ErrMinOrderNotMet is returned when the order amount is below the
	// voucher's minimum.
	ErrMinOrderNotMet = errors.New("order amount below voucher minimum")
)

// Voucher is a discount instrument created by the admin collaborator.
// It combines a discount calculation with eligibility constraints: an active
// flag, a validity window, a minimum order amount, and an optional usage cap.
//
// Evaluation is read-only; MarkUsed records a successful application and is
// called inside the checkout transaction so the counter and the order commit
// together.
type Voucher struct {
	id             kernel.UUID
	code           string
	description    string
	discount       Discount
	minOrderAmount kernel.Money
	usageLimit     int
	usedCount      int
	validFrom      time.Time
	validUntil     time.Time
	isActive       bool

	guard guard.ConstructorGuard
}

// NewVoucher creates an active voucher with zero usage. A usageLimit of 0
// means unlimited use. The code is normalized to upper case.
func NewVoucher(
	id kernel.UUID,
	code string,
	description string,
	discount Discount,
	minOrderAmount kernel.Money,
	usageLimit int,
	validFrom time.Time,
	validUntil time.Time,
) (*Voucher, error) {
	voucher := &Voucher{
		description:    description,
		minOrderAmount: minOrderAmount,
		validFrom:      validFrom,
		validUntil:     validUntil,
		isActive:       true,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		voucher.setID(id),
		voucher.setCode(code),
		voucher.setDiscount(discount),
		voucher.setUsageLimit(usageLimit),
		voucher.setWindow(validFrom, validUntil),
	); err != nil {
		return nil, err
	}

	return voucher, nil
}

// RestoreVoucher reconstructs a voucher from persistence, including its
// current usage count and active flag.
func RestoreVoucher(
	id kernel.UUID,
	code string,
	description string,
	discount Discount,
	minOrderAmount kernel.Money,
	usageLimit int,
	usedCount int,
	validFrom time.Time,
	validUntil time.Time,
	isActive bool,
) (*Voucher, error) {
	voucher, err := NewVoucher(id, code, description, discount, minOrderAmount, usageLimit, validFrom, validUntil)
	if err != nil {
		return nil, err
	}

	if usedCount < 0 {
		return nil, errs.NewValueIsOutOfRangeError("used count", usedCount, 0, usageLimit)
	}

	voucher.usedCount = usedCount
	voucher.isActive = isActive
	return voucher, nil
}

// Validate ensures the Voucher was created through a constructor.
func (v *Voucher) Validate() error {
	if v == nil {
		return ErrVoucherIsNotConstructed
	}
	return v.guard.Validate(ErrVoucherIsNotConstructed)
}

// ID returns the voucher's unique identifier.
func (v *Voucher) ID() kernel.UUID {
	return v.id
}

// Code returns the customer-facing voucher code.
func (v *Voucher) Code() string {
	return v.code
}

// Description returns the display description.
func (v *Voucher) Description() string {
	return v.description
}

// Discount returns the discount calculation.
func (v *Voucher) Discount() Discount {
	return v.discount
}

// MinOrderAmount returns the minimum order amount for eligibility.
func (v *Voucher) MinOrderAmount() kernel.Money {
	return v.minOrderAmount
}

// UsageLimit returns the usage cap; zero means unlimited.
func (v *Voucher) UsageLimit() int {
	return v.usageLimit
}

// UsedCount returns how many times the voucher has been applied.
func (v *Voucher) UsedCount() int {
	return v.usedCount
}

// ValidFrom returns the start of the validity window.
func (v *Voucher) ValidFrom() time.Time {
	return v.validFrom
}

// ValidUntil returns the end of the validity window.
func (v *Voucher) ValidUntil() time.Time {
	return v.validUntil
}

// IsActive returns the active flag.
func (v *Voucher) IsActive() bool {
	return v.isActive
}

// Evaluate checks eligibility and computes the discount for the given order
// amount and delivery fee. The checks run in a fixed sequence so callers get
// the most specific failure: inactive, exhausted, then minimum order.
//
// Evaluate never mutates the voucher; callers that apply the discount must
// also call MarkUsed in the same transaction.
func (v *Voucher) Evaluate(orderAmount kernel.Money, deliveryFee kernel.Money, now time.Time) (kernel.Money, error) {
	if err := v.Validate(); err != nil {
		return kernel.Money{}, err
	}

	if !v.isActive || now.Before(v.validFrom) || now.After(v.validUntil) {
		return kernel.Money{}, ErrVoucherInactive
	}
	if v.isExhausted() {
		return kernel.Money{}, ErrVoucherExhausted
	}
	if orderAmount.Less(v.minOrderAmount) {
		return kernel.Money{}, ErrMinOrderNotMet
	}

	return v.discount.Amount(orderAmount, deliveryFee)
}

// MarkUsed records one successful application, incrementing the usage
// counter. Fails with ErrVoucherExhausted once the cap is reached.
func (v *Voucher) MarkUsed() error {
	if err := v.Validate(); err != nil {
		return err
	}
	if v.isExhausted() {
		return ErrVoucherExhausted
	}
	v.usedCount++
	return nil
}

// Deactivate turns the voucher off. Used by the expiry job once the validity
// window has passed, and by admin disabling.
func (v *Voucher) Deactivate() error {
	if err := v.Validate(); err != nil {
		return err
	}
	v.isActive = false
	return nil
}

// IsExpired reports whether the validity window has passed.
func (v *Voucher) IsExpired(now time.Time) bool {
	return now.After(v.validUntil)
}

func (v *Voucher) isExhausted() bool {
	return v.usageLimit > 0 && v.usedCount >= v.usageLimit
}

func (v *Voucher) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Voucher) setCode(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return errs.NewValueIsRequiredError("voucher code")
	}
	v.code = code
	return nil
}

func (v *Voucher) setDiscount(discount Discount) error {
	if err := discount.Type().Validate(); err != nil {
		return err
	}
	v.discount = discount
	return nil
}

func (v *Voucher) setUsageLimit(limit int) error {
	if limit < 0 {
		return errs.NewValueIsOutOfRangeError("usage limit", limit, 0, "unlimited")
	}
	v.usageLimit = limit
	return nil
}

func (v *Voucher) setWindow(from time.Time, until time.Time) error {
	if !until.After(from) {
		return errs.NewValueIsInvalidErrorWithCause("validity window",
			errors.New("validUntil must be after validFrom"))
	}
	return nil
}
