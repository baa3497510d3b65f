package queries

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

const maxOrdersPageSize = 100

// GetCustomerOrdersQuery retrieves a page of the customer's orders, newest
// first, optionally narrowed to one status.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID
	status     *order.Status
	page       int
	pageSize   int

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a validated query. Pages are 1-based;
// a nil status means all orders.
func NewGetCustomerOrdersQuery(
	customerID kernel.UUID,
	status *order.Status,
	page int,
	pageSize int,
) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetCustomerOrdersQuery{}, err
		}
	}
	if page < 1 {
		return GetCustomerOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("page",
			fmt.Errorf("%d is not a valid page number", page))
	}
	if pageSize < 1 || pageSize > maxOrdersPageSize {
		return GetCustomerOrdersQuery{}, errs.NewValueIsOutOfRangeError("page size", pageSize, 1, maxOrdersPageSize)
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		status:     status,
		page:       page,
		pageSize:   pageSize,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// CustomerID returns the customer whose orders are requested.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Status returns the status filter, nil when all orders are requested.
func (q GetCustomerOrdersQuery) Status() *order.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q GetCustomerOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q GetCustomerOrdersQuery) PageSize() int {
	return q.pageSize
}

// Offset returns the row offset for the requested page.
func (q GetCustomerOrdersQuery) Offset() int {
	return (q.page - 1) * q.pageSize
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// GetCustomerOrdersQueryResponse represents one order in the customer's
// history list.
type GetCustomerOrdersQueryResponse struct {
	ID           kernel.UUID
	Number       string
	RestaurantID kernel.UUID
	Status       string
	Total        kernel.Money
	PlacedAt     time.Time
}
