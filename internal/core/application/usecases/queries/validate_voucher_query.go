package queries

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrValidateVoucherQueryIsNotConstructed = errors.New(
	"ValidateVoucherQuery must be created via NewValidateVoucherQuery constructor",
)

// ValidateVoucherQuery checks whether a voucher code applies to an order of
// the given amount and reports the discount it would grant. The check is
// read-only; usage is only consumed at checkout.
type ValidateVoucherQuery struct {
	code        string
	orderAmount kernel.Money
	deliveryFee kernel.Money

	guard guard.ConstructorGuard
}

// NewValidateVoucherQuery creates a validated query. The code is normalized
// to upper case the same way voucher codes are stored.
func NewValidateVoucherQuery(code string, orderAmount kernel.Money, deliveryFee kernel.Money) (ValidateVoucherQuery, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return ValidateVoucherQuery{}, errs.NewValueIsRequiredError("voucher code")
	}

	return ValidateVoucherQuery{
		code:        normalized,
		orderAmount: orderAmount,
		deliveryFee: deliveryFee,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Code returns the normalized voucher code.
func (q ValidateVoucherQuery) Code() string {
	return q.code
}

// OrderAmount returns the order subtotal the voucher is checked against.
func (q ValidateVoucherQuery) OrderAmount() kernel.Money {
	return q.orderAmount
}

// DeliveryFee returns the delivery fee used for free shipping discounts.
func (q ValidateVoucherQuery) DeliveryFee() kernel.Money {
	return q.deliveryFee
}

// Validate ensures the query was created through the constructor.
func (q ValidateVoucherQuery) Validate() error {
	return q.guard.Validate(ErrValidateVoucherQueryIsNotConstructed)
}

// ValidateVoucherQueryResponse reports the outcome of a voucher check.
// An ineligible voucher is a normal response, not an error: Valid is false
// and Reason explains why.
type ValidateVoucherQueryResponse struct {
	Valid       bool
	Discount    kernel.Money
	Description string
	Reason      string
}
