package cartrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a cart repository over the given connection
// or transaction.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// GetByCustomer retrieves the customer's cart with its items.
func (r *GormCartRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&dto, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart", customerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save replaces the stored cart wholesale. Carts are small and change shape
// on every edit, so delete-and-insert beats diffing rows.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	tx := r.db.WithContext(ctx)

	if err := tx.Where("cart_id = ?", dto.ID).Delete(&CartItemDTO{}).Error; err != nil {
		return err
	}
	if err := tx.Where("id = ?", dto.ID).Delete(&CartDTO{}).Error; err != nil {
		return err
	}

	return tx.Create(&dto).Error
}

// Delete removes the customer's cart and its items.
func (r *GormCartRepository) Delete(ctx context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	var dto CartDTO
	err := r.db.WithContext(ctx).First(&dto, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("cart", customerID.String())
		}
		return err
	}

	tx := r.db.WithContext(ctx)
	if err := tx.Where("cart_id = ?", dto.ID).Delete(&CartItemDTO{}).Error; err != nil {
		return err
	}
	return tx.Delete(&CartDTO{}, "id = ?", dto.ID).Error
}
