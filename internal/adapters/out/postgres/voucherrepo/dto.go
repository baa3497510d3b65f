// Package voucherrepo persists voucher aggregates.
package voucherrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/voucher"

	"github.com/google/uuid"
)

// VoucherDTO represents the database structure of a voucher aggregate.
type VoucherDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code                string    `gorm:"size:32;uniqueIndex"`
	Description         string
	DiscountType        int
	DiscountValue       int64
	DiscountCapCents    int64
	MinOrderAmountCents int64
	UsageLimit          int
	UsedCount           int
	ValidFrom           time.Time
	ValidUntil          time.Time `gorm:"index"`
	IsActive            bool      `gorm:"index"`
}

// TableName overrides GORM's default naming to use "vouchers".
func (VoucherDTO) TableName() string {
	return "vouchers"
}

func fromDomain(aggregate *voucher.Voucher) VoucherDTO {
	discount := aggregate.Discount()

	return VoucherDTO{
		ID:                  aggregate.ID().Bytes(),
		Code:                aggregate.Code(),
		Description:         aggregate.Description(),
		DiscountType:        int(discount.Type()),
		DiscountValue:       discount.Value(),
		DiscountCapCents:    discount.Cap().Cents(),
		MinOrderAmountCents: aggregate.MinOrderAmount().Cents(),
		UsageLimit:          aggregate.UsageLimit(),
		UsedCount:           aggregate.UsedCount(),
		ValidFrom:           aggregate.ValidFrom(),
		ValidUntil:          aggregate.ValidUntil(),
		IsActive:            aggregate.IsActive(),
	}
}

func toDomain(dto VoucherDTO) (*voucher.Voucher, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	discountCap, err := kernel.NewMoney(dto.DiscountCapCents)
	if err != nil {
		return nil, err
	}

	discount, err := voucher.RestoreDiscount(voucher.DiscountType(dto.DiscountType), dto.DiscountValue, discountCap)
	if err != nil {
		return nil, err
	}

	minOrderAmount, err := kernel.NewMoney(dto.MinOrderAmountCents)
	if err != nil {
		return nil, err
	}

	return voucher.RestoreVoucher(
		id, dto.Code, dto.Description,
		discount, minOrderAmount,
		dto.UsageLimit, dto.UsedCount,
		dto.ValidFrom, dto.ValidUntil,
		dto.IsActive,
	)
}
