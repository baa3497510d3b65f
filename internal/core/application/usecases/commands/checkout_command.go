package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand converts the customer's cart into an order: delivery
// destination, payment method, and an optional voucher code.
type CheckoutCommand struct {
	customerID    kernel.UUID
	address       string
	location      kernel.GeoPoint
	note          string
	paymentMethod order.PaymentMethod
	voucherCode   string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a validated command. An empty voucherCode means
// no voucher is applied.
func NewCheckoutCommand(
	customerID kernel.UUID,
	address string,
	location kernel.GeoPoint,
	note string,
	paymentMethod order.PaymentMethod,
	voucherCode string,
) (CheckoutCommand, error) {
	if err := errors.Join(
		customerID.Validate(),
		location.Validate(),
		paymentMethod.Validate(),
	); err != nil {
		return CheckoutCommand{}, err
	}
	if address == "" {
		return CheckoutCommand{}, errs.NewValueIsRequiredError("address")
	}

	return CheckoutCommand{
		customerID:    customerID,
		address:       address,
		location:      location,
		note:          note,
		paymentMethod: paymentMethod,
		voucherCode:   voucherCode,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// CustomerID returns the ordering customer's ID.
func (c *CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Address returns the delivery address.
func (c *CheckoutCommand) Address() string {
	return c.address
}

// Location returns the delivery coordinates.
func (c *CheckoutCommand) Location() kernel.GeoPoint {
	return c.location
}

// Note returns the delivery note for the driver.
func (c *CheckoutCommand) Note() string {
	return c.note
}

// PaymentMethod returns the chosen payment method.
func (c *CheckoutCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// VoucherCode returns the voucher code, empty when none.
func (c *CheckoutCommand) VoucherCode() string {
	return c.voucherCode
}

// Validate ensures the command was created through the constructor.
func (c *CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}
