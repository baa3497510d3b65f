package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandler retrieves an order's status history from the
// database.
type GetOrderTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTrackingQueryHandler creates a handler for tracking queries.
func NewGetOrderTrackingQueryHandler(db *gorm.DB) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db}
}

// Handle executes the query. An order with no tracking rows does not exist;
// every order records an entry the moment it is placed.
func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) ([]GetOrderTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, description, occurred_at
		FROM order_tracking
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetOrderTrackingQueryResponse, 0)
	for rows.Next() {
		var status int
		var description string
		var occurredAt time.Time

		if err = rows.Scan(&status, &description, &occurredAt); err != nil {
			return nil, err
		}

		entries = append(entries, GetOrderTrackingQueryResponse{
			Status:      order.Status(status).String(),
			Description: description,
			OccurredAt:  occurredAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return entries, nil
}
