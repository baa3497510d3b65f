package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler retrieves a customer's order history from
// the database.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for order history
// queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back newest first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id, number, restaurant_id, status,
			subtotal_cents, delivery_fee_cents, discount_cents,
			placed_at
		FROM orders
		WHERE customer_id = ?`
	args := []any{query.CustomerID().Bytes()}

	if query.Status() != nil {
		sql += ` AND status = ?`
		args = append(args, int(*query.Status()))
	}

	sql += `
		ORDER BY placed_at DESC
		LIMIT ? OFFSET ?`
	args = append(args, query.PageSize(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetCustomerOrdersQueryResponse, 0)
	for rows.Next() {
		var id, restaurantID uuid.UUID
		var number string
		var status int
		var subtotalCents, deliveryFeeCents, discountCents int64
		var placedAt time.Time

		err = rows.Scan(&id, &number, &restaurantID, &status,
			&subtotalCents, &deliveryFeeCents, &discountCents, &placedAt)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		restaurant, restaurantErr := kernel.UUIDFromBytes(restaurantID[:])
		if restaurantErr != nil {
			return nil, restaurantErr
		}

		total, totalErr := totalFromCents(subtotalCents, deliveryFeeCents, discountCents)
		if totalErr != nil {
			return nil, totalErr
		}

		orders = append(orders, GetCustomerOrdersQueryResponse{
			ID:           orderID,
			Number:       number,
			RestaurantID: restaurant,
			Status:       order.Status(status).String(),
			Total:        total,
			PlacedAt:     placedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func totalFromCents(subtotalCents, deliveryFeeCents, discountCents int64) (kernel.Money, error) {
	subtotal, err := kernel.NewMoney(subtotalCents)
	if err != nil {
		return kernel.Money{}, err
	}
	deliveryFee, err := kernel.NewMoney(deliveryFeeCents)
	if err != nil {
		return kernel.Money{}, err
	}
	discount, err := kernel.NewMoney(discountCents)
	if err != nil {
		return kernel.Money{}, err
	}
	return order.NewPricing(subtotal, deliveryFee, discount).Total(), nil
}
