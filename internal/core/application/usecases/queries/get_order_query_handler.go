package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id, number, customer_id, restaurant_id, driver_id,
			status, address, note,
			payment_method, payment_status,
			subtotal_cents, delivery_fee_cents, discount_cents,
			estimated_delivery_minutes, cancellation_reason, placed_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	response, err := scanOrderRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Items = items

	return response, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]GetOrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT menu_item_id, name, unit_price_cents, quantity, line_total_cents, notes
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetOrderItemResponse, 0)
	for rows.Next() {
		var menuItemID uuid.UUID
		var name, notes string
		var unitPriceCents, lineTotalCents int64
		var quantity int

		if err = rows.Scan(&menuItemID, &name, &unitPriceCents, &quantity, &lineTotalCents, &notes); err != nil {
			return nil, err
		}

		item, itemErr := newOrderItemResponse(menuItemID, name, unitPriceCents, quantity, lineTotalCents, notes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanOrderRow(row *sql.Row) (GetOrderQueryResponse, error) {
	var id, customerID, restaurantID uuid.UUID
	var driverID uuid.NullUUID
	var number, address, note, cancellationReason string
	var status, paymentMethod, paymentStatus, estimatedMinutes int
	var subtotalCents, deliveryFeeCents, discountCents int64
	var placedAt time.Time

	err := row.Scan(
		&id, &number, &customerID, &restaurantID, &driverID,
		&status, &address, &note,
		&paymentMethod, &paymentStatus,
		&subtotalCents, &deliveryFeeCents, &discountCents,
		&estimatedMinutes, &cancellationReason, &placedAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	customer, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	restaurant, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	var driver *kernel.UUID
	if driverID.Valid {
		d, driverErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if driverErr != nil {
			return GetOrderQueryResponse{}, driverErr
		}
		driver = &d
	}

	subtotal, err := kernel.NewMoney(subtotalCents)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	deliveryFee, err := kernel.NewMoney(deliveryFeeCents)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	discount, err := kernel.NewMoney(discountCents)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	pricing := order.NewPricing(subtotal, deliveryFee, discount)

	return GetOrderQueryResponse{
		ID:                       orderID,
		Number:                   number,
		CustomerID:               customer,
		RestaurantID:             restaurant,
		DriverID:                 driver,
		Status:                   order.Status(status).String(),
		Address:                  address,
		Note:                     note,
		PaymentMethod:            order.PaymentMethod(paymentMethod).String(),
		PaymentStatus:            order.PaymentStatus(paymentStatus).String(),
		Subtotal:                 subtotal,
		DeliveryFee:              deliveryFee,
		Discount:                 discount,
		Total:                    pricing.Total(),
		EstimatedDeliveryMinutes: estimatedMinutes,
		CancellationReason:       cancellationReason,
		PlacedAt:                 placedAt,
	}, nil
}

func newOrderItemResponse(
	menuItemID uuid.UUID,
	name string,
	unitPriceCents int64,
	quantity int,
	lineTotalCents int64,
	notes string,
) (GetOrderItemResponse, error) {
	id, err := kernel.UUIDFromBytes(menuItemID[:])
	if err != nil {
		return GetOrderItemResponse{}, err
	}

	unitPrice, err := kernel.NewMoney(unitPriceCents)
	if err != nil {
		return GetOrderItemResponse{}, err
	}

	lineTotal, err := kernel.NewMoney(lineTotalCents)
	if err != nil {
		return GetOrderItemResponse{}, err
	}

	return GetOrderItemResponse{
		MenuItemID: id,
		Name:       name,
		UnitPrice:  unitPrice,
		Quantity:   quantity,
		LineTotal:  lineTotal,
		Notes:      notes,
	}, nil
}
