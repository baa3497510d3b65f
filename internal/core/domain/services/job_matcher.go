package services

import (
	"time"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

const (
	// MaxJobOffers caps the number of jobs offered to a driver at once.
	MaxJobOffers = 5

	// JobOfferTimeout is the client-facing accept window shown with each
	// offer. It is advisory only; the server does not expire offers, and a
	// decline is a no-op that leaves the order available.
	JobOfferTimeout = 30 * time.Second

	// earningsPercent is the driver's share of the order total.
	earningsPercent = 15

	// earningsBase is the flat per-delivery amount in whole currency units.
	earningsBase = 10_000

	// highDemandFeeUnits marks orders whose delivery fee exceeds this amount
	// in whole currency units as high demand.
	highDemandFeeUnits = 20_000
)

// JobOffer is one ready-for-pickup order presented to a driver, with the
// distances and estimated earnings that inform the accept decision.
type JobOffer struct {
	OrderID           kernel.UUID
	OrderNumber       string
	RestaurantID      kernel.UUID
	PickupDistanceKm  float64
	TripDistanceKm    float64
	EstimatedEarnings kernel.Money
	HighDemand        bool
	AcceptTimeout     time.Duration
}

// JobCandidate pairs an unassigned ready-for-pickup order with its
// restaurant's coordinates, as loaded by the application layer.
type JobCandidate struct {
	Order              *order.Order
	RestaurantLocation kernel.GeoPoint
}

// JobMatcher is a domain service computing the job offers for an available
// driver. It is a pure computation: candidate orders and restaurant
// coordinates are provided by the caller.
//
// For each candidate it computes the pickup distance (driver to restaurant),
// the trip distance (restaurant to the delivery address), the estimated
// earnings, and the high demand flag. Offers are capped at MaxJobOffers.
type JobMatcher struct{}

// NewJobMatcher creates a new JobMatcher instance.
func NewJobMatcher() JobMatcher {
	return JobMatcher{}
}

// EstimateEarnings computes the driver's pay for delivering an order:
// 15% of the order total plus a flat base, rounded to a whole currency unit.
func (j JobMatcher) EstimateEarnings(orderTotal kernel.Money) kernel.Money {
	return orderTotal.
		Percent(earningsPercent).
		Add(kernel.NewMoneyFromUnits(earningsBase)).
		RoundToUnit()
}

// Match computes job offers for the driver over the candidate orders.
// Fails when the driver is not available for matching; candidates that are
// not ReadyForPickup or already have a driver are skipped rather than
// failing the whole listing.
func (j JobMatcher) Match(d *driver.Driver, candidates []JobCandidate) ([]JobOffer, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if !d.AvailableForMatching() {
		return nil, errs.NewForbiddenError("driver "+d.ID().String(), "job listing")
	}

	driverLocation := *d.Location()
	offers := make([]JobOffer, 0, MaxJobOffers)

	for _, candidate := range candidates {
		if len(offers) == MaxJobOffers {
			break
		}

		o := candidate.Order
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if o.Status() != order.ReadyForPickup || o.DriverID() != nil {
			continue
		}

		pickupKm, err := driverLocation.DistanceKm(candidate.RestaurantLocation)
		if err != nil {
			return nil, err
		}

		tripKm, err := candidate.RestaurantLocation.DistanceKm(o.Destination().Location())
		if err != nil {
			return nil, err
		}

		offers = append(offers, JobOffer{
			OrderID:           o.ID(),
			OrderNumber:       o.Number(),
			RestaurantID:      o.RestaurantID(),
			PickupDistanceKm:  pickupKm,
			TripDistanceKm:    tripKm,
			EstimatedEarnings: j.EstimateEarnings(o.Pricing().Total()),
			HighDemand:        j.isHighDemand(o.Pricing().DeliveryFee()),
			AcceptTimeout:     JobOfferTimeout,
		})
	}

	return offers, nil
}

func (j JobMatcher) isHighDemand(deliveryFee kernel.Money) bool {
	return kernel.NewMoneyFromUnits(highDemandFeeUnits).Less(deliveryFee)
}
