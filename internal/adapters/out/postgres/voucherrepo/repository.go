package voucherrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/voucher"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVoucherRepository implements ports.VoucherRepository using GORM.
type GormVoucherRepository struct {
	db *gorm.DB
}

// NewGormVoucherRepository creates a voucher repository over the given
// connection or transaction.
func NewGormVoucherRepository(db *gorm.DB) *GormVoucherRepository {
	return &GormVoucherRepository{db: db}
}

// Get retrieves a voucher by ID.
func (r *GormVoucherRepository) Get(ctx context.Context, id kernel.UUID) (*voucher.Voucher, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VoucherDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("voucher", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves a voucher by its customer-facing code. Codes are
// stored upper case; the lookup normalizes the same way the aggregate does.
func (r *GormVoucherRepository) GetByCode(ctx context.Context, code string) (*voucher.Voucher, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, errs.NewValueIsRequiredError("voucher code")
	}

	var dto VoucherDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", normalized).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("voucher", normalized)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update saves an existing voucher. All columns are written so deactivation
// is not skipped as a zero value.
func (r *GormVoucherRepository) Update(ctx context.Context, aggregate *voucher.Voucher) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&VoucherDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("voucher", aggregate.ID().String())
	}

	return nil
}

// GetExpiredActive retrieves vouchers still flagged active whose validity
// window has passed. Used by the expiry job.
func (r *GormVoucherRepository) GetExpiredActive(ctx context.Context, now time.Time) ([]*voucher.Voucher, error) {
	var dtos []VoucherDTO
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND valid_until < ?", true, now).
		Order("valid_until").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	vouchers := make([]*voucher.Voucher, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		vouchers = append(vouchers, aggregate)
	}

	return vouchers, nil
}
