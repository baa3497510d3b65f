package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
)

// MenuItem is the restaurant collaborator's view of a menu item at lookup
// time.
type MenuItem struct {
	ID          kernel.UUID
	Name        string
	Price       kernel.Money
	IsAvailable bool
}

// Restaurant is the restaurant collaborator's view of a restaurant.
type Restaurant struct {
	ID          kernel.UUID
	Name        string
	IsOpen      bool
	DeliveryFee kernel.Money
	Location    kernel.GeoPoint
}

// RestaurantGateway provides read access to the restaurant and menu
// collaborator. Checkout re-fetches every menu item through this gateway so
// availability and prices are current at order placement time.
type RestaurantGateway interface {
	// GetRestaurant retrieves a restaurant by ID.
	GetRestaurant(ctx context.Context, id kernel.UUID) (Restaurant, error)

	// GetMenuItem retrieves a menu item by ID.
	GetMenuItem(ctx context.Context, id kernel.UUID) (MenuItem, error)
}
