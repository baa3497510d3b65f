// Package restaurants is the HTTP client for the restaurant and menu
// collaborator.
package restaurants

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

var _ ports.RestaurantGateway = Gateway{}

type restaurantPayload struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	IsOpen           bool    `json:"is_open"`
	DeliveryFeeCents int64   `json:"delivery_fee_cents"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
}

type menuItemPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"price_cents"`
	IsAvailable bool   `json:"is_available"`
}

// Gateway reads restaurants and menu items over the collaborator's REST API.
type Gateway struct {
	baseURL string
	client  *http.Client
}

// NewGateway creates a gateway against the given base URL, e.g.
// "http://restaurant-service:8080".
func NewGateway(baseURL string) Gateway {
	return Gateway{
		baseURL: baseURL,
		client:  http.DefaultClient,
	}
}

// GetRestaurant retrieves a restaurant by ID.
func (g Gateway) GetRestaurant(ctx context.Context, id kernel.UUID) (ports.Restaurant, error) {
	var payload restaurantPayload
	if err := g.get(ctx, fmt.Sprintf("%s/api/v1/restaurants/%s", g.baseURL, id.String()),
		"restaurant", id.String(), &payload); err != nil {
		return ports.Restaurant{}, err
	}

	restaurantID, err := kernel.UUIDFromString(payload.ID)
	if err != nil {
		return ports.Restaurant{}, err
	}

	deliveryFee, err := kernel.NewMoney(payload.DeliveryFeeCents)
	if err != nil {
		return ports.Restaurant{}, err
	}

	location, err := kernel.NewGeoPoint(payload.Latitude, payload.Longitude)
	if err != nil {
		return ports.Restaurant{}, err
	}

	return ports.Restaurant{
		ID:          restaurantID,
		Name:        payload.Name,
		IsOpen:      payload.IsOpen,
		DeliveryFee: deliveryFee,
		Location:    location,
	}, nil
}

// GetMenuItem retrieves a menu item by ID.
func (g Gateway) GetMenuItem(ctx context.Context, id kernel.UUID) (ports.MenuItem, error) {
	var payload menuItemPayload
	if err := g.get(ctx, fmt.Sprintf("%s/api/v1/menu-items/%s", g.baseURL, id.String()),
		"menu item", id.String(), &payload); err != nil {
		return ports.MenuItem{}, err
	}

	itemID, err := kernel.UUIDFromString(payload.ID)
	if err != nil {
		return ports.MenuItem{}, err
	}

	price, err := kernel.NewMoney(payload.PriceCents)
	if err != nil {
		return ports.MenuItem{}, err
	}

	return ports.MenuItem{
		ID:          itemID,
		Name:        payload.Name,
		Price:       price,
		IsAvailable: payload.IsAvailable,
	}, nil
}

func (g Gateway) get(ctx context.Context, url string, kind string, id string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errs.NewObjectNotFoundError(kind, id)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s lookup failed with status %d", kind, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
