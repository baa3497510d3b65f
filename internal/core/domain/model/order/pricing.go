package order

import (
	"fooddelivery/internal/core/domain/model/kernel"
)

// Pricing is the immutable money breakdown of an order, fixed at checkout.
// The total is derived, never stored independently, so the
// subtotal + deliveryFee - discount relationship cannot drift.
type Pricing struct {
	subtotal    kernel.Money
	deliveryFee kernel.Money
	discount    kernel.Money
}

// NewPricing builds the breakdown from the checkout computation. The discount
// may exceed subtotal + deliveryFee; the total clamps at zero instead of
// going negative.
func NewPricing(subtotal kernel.Money, deliveryFee kernel.Money, discount kernel.Money) Pricing {
	return Pricing{
		subtotal:    subtotal,
		deliveryFee: deliveryFee,
		discount:    discount,
	}
}

// Subtotal returns the sum of all item line totals.
func (p Pricing) Subtotal() kernel.Money {
	return p.subtotal
}

// DeliveryFee returns the fee charged for delivery, after any free-shipping
// adjustment.
func (p Pricing) DeliveryFee() kernel.Money {
	return p.deliveryFee
}

// Discount returns the voucher discount applied at checkout.
func (p Pricing) Discount() kernel.Money {
	return p.discount
}

// Total returns subtotal + deliveryFee - discount, clamped at zero.
func (p Pricing) Total() kernel.Money {
	return p.subtotal.Add(p.deliveryFee).SubClamped(p.discount)
}
