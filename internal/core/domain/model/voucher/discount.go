package voucher

import (
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// DiscountType identifies the discount calculation variant of a voucher.
type DiscountType int

const (
	// DiscountTypeUnknown represents an invalid or undefined type.
	DiscountTypeUnknown DiscountType = iota

	// Percentage discounts a percentage of the order amount, optionally
	// capped.
	Percentage

	// FixedAmount discounts a fixed amount, optionally capped.
	FixedAmount

	// FreeShipping discounts the restaurant's delivery fee.
	FreeShipping
)

func getDiscountTypeStrings() map[DiscountType]string {
	return map[DiscountType]string{
		DiscountTypeUnknown: "Unknown",
		Percentage:          "Percentage",
		FixedAmount:         "FixedAmount",
		FreeShipping:        "FreeShipping",
	}
}

// Validate checks if the DiscountType value is one of the defined types.
func (d DiscountType) Validate() error {
	if d <= DiscountTypeUnknown || d > FreeShipping {
		return errs.NewValueIsInvalidErrorWithCause("discount type",
			fmt.Errorf("%d is not a valid discount type", d))
	}
	return nil
}

// String returns the canonical name of the discount type.
// Implements fmt.Stringer; safe on any DiscountType value.
func (d DiscountType) String() string {
	if str, ok := getDiscountTypeStrings()[d]; ok {
		return str
	}
	return "Unknown"
}

// Discount is a tagged variant describing how a voucher reduces the order
// total. The meaning of value and cap depends on the type:
//
//   - Percentage: value is the percentage of the order amount, cap limits the
//     resulting discount when non-zero
//   - FixedAmount: value is the discount in whole currency units, capped when
//     cap is non-zero
//   - FreeShipping: value and cap are ignored; the discount always equals the
//     delivery fee
type Discount struct {
	dtype DiscountType
	value int64
	cap   kernel.Money
}

// NewPercentageDiscount creates a percentage discount. Percent must lie in
// (0, 100]. A zero cap means uncapped.
func NewPercentageDiscount(percent int64, cap kernel.Money) (Discount, error) {
	if percent <= 0 || percent > 100 {
		return Discount{}, errs.NewValueIsOutOfRangeError("percent", percent, int64(1), int64(100))
	}
	return Discount{dtype: Percentage, value: percent, cap: cap}, nil
}

// NewFixedAmountDiscount creates a fixed-amount discount. A zero cap means
// uncapped.
func NewFixedAmountDiscount(amount kernel.Money, cap kernel.Money) (Discount, error) {
	if amount.IsZero() {
		return Discount{}, errs.NewValueIsRequiredError("discount amount")
	}
	return Discount{dtype: FixedAmount, value: amount.Cents(), cap: cap}, nil
}

// NewFreeShippingDiscount creates a free-shipping discount.
func NewFreeShippingDiscount() Discount {
	return Discount{dtype: FreeShipping}
}

// RestoreDiscount reconstructs a discount from persistence.
func RestoreDiscount(dtype DiscountType, value int64, cap kernel.Money) (Discount, error) {
	switch dtype {
	case Percentage:
		return NewPercentageDiscount(value, cap)
	case FixedAmount:
		amount, err := kernel.NewMoney(value)
		if err != nil {
			return Discount{}, err
		}
		return NewFixedAmountDiscount(amount, cap)
	case FreeShipping:
		return NewFreeShippingDiscount(), nil
	case DiscountTypeUnknown:
		return Discount{}, dtype.Validate()
	default:
		return Discount{}, dtype.Validate()
	}
}

// Type returns the discount variant.
func (d Discount) Type() DiscountType {
	return d.dtype
}

// Value returns the raw discount value: a percentage for Percentage, cents
// for FixedAmount, zero for FreeShipping.
func (d Discount) Value() int64 {
	return d.value
}

// Cap returns the maximum discount amount; zero means uncapped.
func (d Discount) Cap() kernel.Money {
	return d.cap
}

// Amount computes the discount for the given order amount and delivery fee.
// The same calculation serves both the checkout path and the standalone
// validation path so the two can never disagree.
func (d Discount) Amount(orderAmount kernel.Money, deliveryFee kernel.Money) (kernel.Money, error) {
	switch d.dtype {
	case Percentage:
		return d.applyCap(orderAmount.Percent(d.value)), nil
	case FixedAmount:
		amount, err := kernel.NewMoney(d.value)
		if err != nil {
			return kernel.Money{}, err
		}
		return d.applyCap(amount), nil
	case FreeShipping:
		return deliveryFee, nil
	case DiscountTypeUnknown:
		return kernel.Money{}, d.dtype.Validate()
	default:
		return kernel.Money{}, d.dtype.Validate()
	}
}

func (d Discount) applyCap(amount kernel.Money) kernel.Money {
	if d.cap.IsZero() {
		return amount
	}
	return amount.Min(d.cap)
}
