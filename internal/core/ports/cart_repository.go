package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for carts. Each customer
// has at most one active cart.
type CartRepository interface {
	// GetByCustomer retrieves the customer's active cart.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// Save persists the cart, creating or replacing it.
	Save(ctx context.Context, aggregate *cart.Cart) error

	// Delete removes the customer's cart. Called after checkout and on
	// explicit clear.
	Delete(ctx context.Context, customerID kernel.UUID) error
}
