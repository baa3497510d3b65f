// Package orderrepo persists order aggregates. An order spans three tables:
// the order row itself, its immutable line items, and the append-only
// tracking history.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure of an order aggregate.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number       string     `gorm:"size:16;uniqueIndex"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;index"`
	DriverID     *uuid.UUID `gorm:"type:uuid;index"`
	VoucherID    *uuid.UUID `gorm:"type:uuid"`

	Address   string
	Latitude  float64
	Longitude float64
	Note      string

	PaymentMethod int
	PaymentStatus int

	SubtotalCents    int64
	DeliveryFeeCents int64
	DiscountCents    int64

	Status                   int `gorm:"index"`
	EstimatedDeliveryMinutes int
	CancellationReason       string

	PlacedAt    time.Time
	ConfirmedAt *time.Time
	ReadyAt     *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time

	Items    []ItemDTO     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Tracking []TrackingDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line. Lines are written once at checkout and
// never updated.
type ItemDTO struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID     uuid.UUID `gorm:"type:uuid"`
	Name           string
	UnitPriceCents int64
	Quantity       int
	LineTotalCents int64
	Notes          string
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// TrackingDTO represents one entry of the order's status history.
type TrackingDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Status      int
	Description string
	OccurredAt  time.Time
}

// TableName overrides GORM's default naming to use "order_tracking".
func (TrackingDTO) TableName() string {
	return "order_tracking"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	id := aggregate.ID().Bytes()

	var driverID *uuid.UUID
	if d := aggregate.DriverID(); d != nil {
		raw := d.Bytes()
		driverID = &raw
	}

	var voucherID *uuid.UUID
	if v := aggregate.VoucherID(); v != nil {
		raw := v.Bytes()
		voucherID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:        id,
			MenuItemID:     item.MenuItemID().Bytes(),
			Name:           item.Name(),
			UnitPriceCents: item.UnitPrice().Cents(),
			Quantity:       item.Quantity(),
			LineTotalCents: item.LineTotal().Cents(),
			Notes:          item.Notes(),
		})
	}

	tracking := make([]TrackingDTO, 0, len(aggregate.Tracking()))
	for _, entry := range aggregate.Tracking() {
		tracking = append(tracking, TrackingDTO{
			OrderID:     id,
			Status:      int(entry.Status()),
			Description: entry.Description(),
			OccurredAt:  entry.OccurredAt(),
		})
	}

	destination := aggregate.Destination()
	pricing := aggregate.Pricing()

	return OrderDTO{
		ID:           id,
		Number:       aggregate.Number(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		DriverID:     driverID,
		VoucherID:    voucherID,

		Address:   destination.Address(),
		Latitude:  destination.Location().Latitude(),
		Longitude: destination.Location().Longitude(),
		Note:      destination.Note(),

		PaymentMethod: int(aggregate.PaymentMethod()),
		PaymentStatus: int(aggregate.PaymentStatus()),

		SubtotalCents:    pricing.Subtotal().Cents(),
		DeliveryFeeCents: pricing.DeliveryFee().Cents(),
		DiscountCents:    pricing.Discount().Cents(),

		Status:                   int(aggregate.Status()),
		EstimatedDeliveryMinutes: aggregate.EstimatedDeliveryMinutes(),
		CancellationReason:       aggregate.CancellationReason(),

		PlacedAt:    aggregate.PlacedAt(),
		ConfirmedAt: aggregate.ConfirmedAt(),
		ReadyAt:     aggregate.ReadyAt(),
		PickedUpAt:  aggregate.PickedUpAt(),
		DeliveredAt: aggregate.DeliveredAt(),
		CancelledAt: aggregate.CancelledAt(),

		Items:    items,
		Tracking: tracking,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := optionalUUID(dto.DriverID)
	if err != nil {
		return nil, err
	}

	voucherID, err := optionalUUID(dto.VoucherID)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	destination, err := order.NewDestination(dto.Address, location, dto.Note)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	tracking := make([]order.TrackingEntry, 0, len(dto.Tracking))
	for _, entry := range dto.Tracking {
		tracking = append(tracking, order.NewTrackingEntry(
			order.Status(entry.Status),
			entry.Description,
			entry.OccurredAt,
		))
	}

	subtotal, err := kernel.NewMoney(dto.SubtotalCents)
	if err != nil {
		return nil, err
	}
	deliveryFee, err := kernel.NewMoney(dto.DeliveryFeeCents)
	if err != nil {
		return nil, err
	}
	discount, err := kernel.NewMoney(dto.DiscountCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                       id,
		Number:                   dto.Number,
		CustomerID:               customerID,
		RestaurantID:             restaurantID,
		DriverID:                 driverID,
		VoucherID:                voucherID,
		Destination:              destination,
		Items:                    items,
		PaymentMethod:            order.PaymentMethod(dto.PaymentMethod),
		PaymentStatus:            order.PaymentStatus(dto.PaymentStatus),
		Pricing:                  order.NewPricing(subtotal, deliveryFee, discount),
		Status:                   order.Status(dto.Status),
		EstimatedDeliveryMinutes: dto.EstimatedDeliveryMinutes,
		CancellationReason:       dto.CancellationReason,
		PlacedAt:                 dto.PlacedAt,
		ConfirmedAt:              dto.ConfirmedAt,
		ReadyAt:                  dto.ReadyAt,
		PickedUpAt:               dto.PickedUpAt,
		DeliveredAt:              dto.DeliveredAt,
		CancelledAt:              dto.CancelledAt,
		Tracking:                 tracking,
	})
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPriceCents)
	if err != nil {
		return order.Item{}, err
	}

	lineTotal, err := kernel.NewMoney(dto.LineTotalCents)
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(menuItemID, dto.Name, unitPrice, dto.Quantity, lineTotal, dto.Notes)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
