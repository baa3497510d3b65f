package orderrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates an order repository over the given
// connection or transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order with its items and initial tracking entry. A
// collision on the order number unique index maps to
// order.ErrOrderNumberTaken so checkout can retry with a fresh number.
//
// The insert runs in a nested transaction. Inside the unit of work gorm
// turns it into a savepoint, so a collision rolls back to the savepoint and
// the enclosing transaction stays usable for the retry; Postgres would
// otherwise abort it on the first unique violation.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&dto).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return order.ErrOrderNumberTaken
		}
		return err
	}

	return nil
}

// Update saves an existing order. Line items never change after checkout;
// new tracking entries are appended from the aggregate, which holds the full
// history.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select(
			"driver_id", "payment_status", "status", "cancellation_reason",
			"confirmed_at", "ready_at", "picked_up_at", "delivered_at", "cancelled_at",
		).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return r.appendTracking(ctx, dto)
}

// Get retrieves an order by ID, including items and tracking history.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Tracking", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetReadyForPickup retrieves unassigned orders awaiting a driver, oldest
// first.
func (r *GormOrderRepository) GetReadyForPickup(ctx context.Context, limit int) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Tracking", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("status = ? AND driver_id IS NULL", int(order.ReadyForPickup)).
		Order("placed_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// AssignDriver claims the order for the aggregate's driver. The claim is a
// conditional update on driver_id so two drivers accepting concurrently
// cannot both win; the loser gets order.ErrAlreadyAssigned.
func (r *GormOrderRepository) AssignDriver(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if dto.DriverID == nil {
		return errs.NewValueIsRequiredError("driver id")
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND driver_id IS NULL", dto.ID).
		Updates(map[string]any{
			"driver_id":    *dto.DriverID,
			"status":       dto.Status,
			"picked_up_at": dto.PickedUpAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return order.ErrAlreadyAssigned
	}

	return r.appendTracking(ctx, dto)
}

// appendTracking inserts the tracking entries not yet stored. The ledger is
// append-only and the aggregate carries the complete history, so everything
// beyond the stored row count is new; existing rows are never touched.
func (r *GormOrderRepository) appendTracking(ctx context.Context, dto OrderDTO) error {
	tx := r.db.WithContext(ctx)

	var stored int64
	if err := tx.Model(&TrackingDTO{}).Where("order_id = ?", dto.ID).Count(&stored).Error; err != nil {
		return err
	}
	if int(stored) >= len(dto.Tracking) {
		return nil
	}

	entries := dto.Tracking[stored:]
	return tx.Create(&entries).Error
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
