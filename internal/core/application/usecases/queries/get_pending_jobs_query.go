package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetPendingJobsQueryIsNotConstructed = errors.New(
	"GetPendingJobsQuery must be created via NewGetPendingJobsQuery constructor",
)

// GetPendingJobsQuery retrieves the job offers currently available to a
// driver.
type GetPendingJobsQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPendingJobsQuery creates a validated query.
func NewGetPendingJobsQuery(driverID kernel.UUID) (GetPendingJobsQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetPendingJobsQuery{}, err
	}

	return GetPendingJobsQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// DriverID returns the requesting driver's ID.
func (q GetPendingJobsQuery) DriverID() kernel.UUID {
	return q.driverID
}

// Validate ensures the query was created through the constructor.
func (q GetPendingJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingJobsQueryIsNotConstructed)
}

// GetPendingJobsQueryResponse represents one job offer shown to a driver.
type GetPendingJobsQueryResponse struct {
	OrderID              kernel.UUID
	OrderNumber          string
	RestaurantID         kernel.UUID
	PickupDistanceKm     float64
	TripDistanceKm       float64
	EstimatedEarnings    kernel.Money
	HighDemand           bool
	AcceptTimeoutSeconds int
}
