package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Money represents a non-negative fixed-point currency amount with two
// decimal places, stored internally in minor units (cents). The zero value is
// a valid amount of 0.00, which makes Money convenient as a running total.
//
// Money is immutable: arithmetic methods return new values. Amounts never go
// negative; subtraction either fails or clamps at zero depending on the
// method used.
//
// Example:
//
//	subtotal := kernel.NewMoneyFromUnits(300_000)
//	discount := subtotal.Percent(10).Min(kernel.NewMoneyFromUnits(20_000))
//	total := subtotal.SubClamped(discount)
type Money struct {
	cents int64
}

// NewMoney creates a Money from minor units (cents).
// Returns an error for negative amounts.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromUnits creates a Money from whole currency units.
// Negative inputs are clamped to zero; use NewMoney when rejection is needed.
func NewMoneyFromUnits(units int64) Money {
	if units < 0 {
		return Money{}
	}
	return Money{cents: units * 100}
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// IsZero reports whether the amount is exactly 0.00.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns the difference of two amounts.
// Fails when other exceeds the amount, since Money cannot go negative.
func (m Money) Sub(other Money) (Money, error) {
	if other.cents > m.cents {
		return Money{}, errs.NewValueIsOutOfRangeError("money", other.cents, int64(0), m.cents)
	}
	return Money{cents: m.cents - other.cents}, nil
}

// SubClamped returns the difference of two amounts, clamped at zero.
// Used where a discount must never push a total below 0.00.
func (m Money) SubClamped(other Money) Money {
	if other.cents >= m.cents {
		return Money{}
	}
	return Money{cents: m.cents - other.cents}
}

// MulQuantity returns the amount multiplied by a line-item quantity.
func (m Money) MulQuantity(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

// Percent returns the given percentage of the amount, rounded half-up to the
// nearest cent.
func (m Money) Percent(percent int64) Money {
	if percent <= 0 {
		return Money{}
	}
	return Money{cents: (m.cents*percent + 50) / 100}
}

// RoundToUnit returns the amount rounded half-up to the nearest whole
// currency unit.
func (m Money) RoundToUnit() Money {
	return Money{cents: (m.cents + 50) / 100 * 100}
}

// Min returns the smaller of two amounts.
func (m Money) Min(other Money) Money {
	if other.cents < m.cents {
		return other
	}
	return m
}

// Less reports whether the amount is strictly smaller than other.
func (m Money) Less(other Money) bool {
	return m.cents < other.cents
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String returns the amount formatted with two decimal places, e.g. "300000.00".
// Implements fmt.Stringer.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
