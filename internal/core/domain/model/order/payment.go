package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// PaymentMethod identifies how the customer pays for the order.
// Payment processing itself happens outside the core; the order only records
// the chosen method.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodCash is cash on delivery.
	PaymentMethodCash

	// PaymentMethodMoMo is the MoMo e-wallet.
	PaymentMethodMoMo

	// PaymentMethodZaloPay is the ZaloPay e-wallet.
	PaymentMethodZaloPay

	// PaymentMethodCard is a bank card.
	PaymentMethodCard
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "Unknown",
		PaymentMethodCash:    "Cash",
		PaymentMethodMoMo:    "MoMo",
		PaymentMethodZaloPay: "ZaloPay",
		PaymentMethodCard:    "Card",
	}
}

// Validate checks if the PaymentMethod value is one of the defined methods.
func (m PaymentMethod) Validate() error {
	if m <= PaymentMethodUnknown || m > PaymentMethodCard {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the canonical name of the payment method.
// Implements fmt.Stringer; safe on any PaymentMethod value.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// PaymentStatus tracks the settlement state of the order's payment, as
// reported by the external payment collaborator.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentPending means the payment has not settled yet.
	PaymentPending

	// PaymentPaid means the payment settled successfully.
	PaymentPaid

	// PaymentFailed means the payment attempt failed.
	PaymentFailed

	// PaymentRefunded means the payment was returned to the customer.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "Unknown",
		PaymentPending:       "Pending",
		PaymentPaid:          "Paid",
		PaymentFailed:        "Failed",
		PaymentRefunded:      "Refunded",
	}
}

// Validate checks if the PaymentStatus value is one of the defined statuses.
func (s PaymentStatus) Validate() error {
	if s <= PaymentStatusUnknown || s > PaymentRefunded {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the canonical name of the payment status.
// Implements fmt.Stringer; safe on any PaymentStatus value.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
