// Package queries implements the read side. Query handlers go straight to
// the database with raw SQL and return plain response structs; they never
// load aggregates or apply domain rules.
package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its items and pricing breakdown.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a validated query.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the requested order's ID.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderQueryResponse represents one order for display.
type GetOrderQueryResponse struct {
	ID                       kernel.UUID
	Number                   string
	CustomerID               kernel.UUID
	RestaurantID             kernel.UUID
	DriverID                 *kernel.UUID
	Status                   string
	Address                  string
	Note                     string
	PaymentMethod            string
	PaymentStatus            string
	Subtotal                 kernel.Money
	DeliveryFee              kernel.Money
	Discount                 kernel.Money
	Total                    kernel.Money
	EstimatedDeliveryMinutes int
	CancellationReason       string
	PlacedAt                 time.Time
	Items                    []GetOrderItemResponse
}

// GetOrderItemResponse represents one order line for display.
type GetOrderItemResponse struct {
	MenuItemID kernel.UUID
	Name       string
	UnitPrice  kernel.Money
	Quantity   int
	LineTotal  kernel.Money
	Notes      string
}
