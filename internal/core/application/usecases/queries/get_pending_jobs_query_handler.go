package queries

import (
	"context"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// GetPendingJobsQueryHandler lists the jobs a driver can accept right now.
//
// Unlike the pure read queries this handler composes domain state: it loads
// the driver and the unassigned ready-for-pickup orders, resolves each
// restaurant's coordinates through the gateway, and lets the job matcher
// compute distances and earnings.
type GetPendingJobsQueryHandler struct {
	orders      ports.OrderRepository
	drivers     ports.DriverRepository
	restaurants ports.RestaurantGateway
	matcher     services.JobMatcher
}

// NewGetPendingJobsQueryHandler creates a handler for job listings.
func NewGetPendingJobsQueryHandler(
	orders ports.OrderRepository,
	drivers ports.DriverRepository,
	restaurants ports.RestaurantGateway,
) GetPendingJobsQueryHandler {
	return GetPendingJobsQueryHandler{
		orders:      orders,
		drivers:     drivers,
		restaurants: restaurants,
		matcher:     services.NewJobMatcher(),
	}
}

// Handle executes the query. Fails with errs.ErrForbidden when the driver is
// not available for matching.
func (h GetPendingJobsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingJobsQuery,
) ([]GetPendingJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requestingDriver, err := h.drivers.Get(ctx, query.DriverID())
	if err != nil {
		return nil, err
	}

	ready, err := h.orders.GetReadyForPickup(ctx, services.MaxJobOffers)
	if err != nil {
		return nil, err
	}

	candidates := make([]services.JobCandidate, 0, len(ready))
	for _, candidate := range ready {
		restaurant, restaurantErr := h.restaurants.GetRestaurant(ctx, candidate.RestaurantID())
		if restaurantErr != nil {
			return nil, restaurantErr
		}

		candidates = append(candidates, services.JobCandidate{
			Order:              candidate,
			RestaurantLocation: restaurant.Location,
		})
	}

	offers, err := h.matcher.Match(requestingDriver, candidates)
	if err != nil {
		return nil, err
	}

	responses := make([]GetPendingJobsQueryResponse, 0, len(offers))
	for _, offer := range offers {
		responses = append(responses, GetPendingJobsQueryResponse{
			OrderID:              offer.OrderID,
			OrderNumber:          offer.OrderNumber,
			RestaurantID:         offer.RestaurantID,
			PickupDistanceKm:     offer.PickupDistanceKm,
			TripDistanceKm:       offer.TripDistanceKm,
			EstimatedEarnings:    offer.EstimatedEarnings,
			HighDemand:           offer.HighDemand,
			AcceptTimeoutSeconds: int(offer.AcceptTimeout.Seconds()),
		})
	}

	return responses, nil
}
