package queries

import (
	"context"
	"database/sql"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler retrieves a customer's cart from the database.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query. A customer without a stored cart gets an empty
// response.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	var cartID uuid.UUID
	var restaurantID uuid.NullUUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, restaurant_id
		FROM carts
		WHERE customer_id = ?
	`, query.CustomerID().Bytes()).Row()

	if err := row.Scan(&cartID, &restaurantID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCartQueryResponse{Items: []GetCartItemResponse{}}, nil
		}
		return GetCartQueryResponse{}, err
	}

	var restaurant *kernel.UUID
	if restaurantID.Valid {
		id, err := kernel.UUIDFromBytes(restaurantID.UUID[:])
		if err != nil {
			return GetCartQueryResponse{}, err
		}
		restaurant = &id
	}

	items, subtotal, err := h.loadItems(ctx, cartID)
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	return GetCartQueryResponse{
		RestaurantID: restaurant,
		Items:        items,
		Subtotal:     subtotal,
	}, nil
}

func (h GetCartQueryHandler) loadItems(ctx context.Context, cartID uuid.UUID) ([]GetCartItemResponse, kernel.Money, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT menu_item_id, name, unit_price_cents, quantity, notes
		FROM cart_items
		WHERE cart_id = ?
		ORDER BY id
	`, cartID).Rows()
	if err != nil {
		return nil, kernel.Money{}, err
	}
	defer rows.Close()

	items := make([]GetCartItemResponse, 0)
	var subtotal kernel.Money

	for rows.Next() {
		var menuItemID uuid.UUID
		var name, notes string
		var unitPriceCents int64
		var quantity int

		if err = rows.Scan(&menuItemID, &name, &unitPriceCents, &quantity, &notes); err != nil {
			return nil, kernel.Money{}, err
		}

		id, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return nil, kernel.Money{}, idErr
		}

		unitPrice, priceErr := kernel.NewMoney(unitPriceCents)
		if priceErr != nil {
			return nil, kernel.Money{}, priceErr
		}

		lineTotal := unitPrice.MulQuantity(quantity)
		subtotal = subtotal.Add(lineTotal)

		items = append(items, GetCartItemResponse{
			MenuItemID: id,
			Name:       name,
			UnitPrice:  unitPrice,
			Quantity:   quantity,
			LineTotal:  lineTotal,
			Notes:      notes,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, kernel.Money{}, err
	}
	return items, subtotal, nil
}
