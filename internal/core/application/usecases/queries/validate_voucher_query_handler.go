package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/voucher"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ValidateVoucherQueryHandler checks a voucher code against an order amount
// using the same evaluation rules checkout applies.
type ValidateVoucherQueryHandler struct {
	db *gorm.DB
}

// NewValidateVoucherQueryHandler creates a handler for voucher checks.
func NewValidateVoucherQueryHandler(db *gorm.DB) ValidateVoucherQueryHandler {
	return ValidateVoucherQueryHandler{db: db}
}

// Handle executes the query. An unknown or ineligible voucher yields a
// response with Valid false; only infrastructure failures return an error.
func (h ValidateVoucherQueryHandler) Handle(
	ctx context.Context,
	query ValidateVoucherQuery,
) (ValidateVoucherQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ValidateVoucherQueryResponse{}, err
	}

	aggregate, err := h.loadVoucher(ctx, query.Code())
	if errors.Is(err, sql.ErrNoRows) {
		return ValidateVoucherQueryResponse{Reason: "voucher not found"}, nil
	}
	if err != nil {
		return ValidateVoucherQueryResponse{}, err
	}

	discount, err := aggregate.Evaluate(query.OrderAmount(), query.DeliveryFee(), time.Now())
	if err != nil {
		return ValidateVoucherQueryResponse{
			Description: aggregate.Description(),
			Reason:      err.Error(),
		}, nil
	}

	return ValidateVoucherQueryResponse{
		Valid:       true,
		Discount:    discount,
		Description: aggregate.Description(),
	}, nil
}

func (h ValidateVoucherQueryHandler) loadVoucher(ctx context.Context, code string) (*voucher.Voucher, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id, code, description,
			discount_type, discount_value, discount_cap_cents,
			min_order_amount_cents, usage_limit, used_count,
			valid_from, valid_until, is_active
		FROM vouchers
		WHERE code = ?
	`, code).Row()

	var id uuid.UUID
	var storedCode, description string
	var discountType int
	var discountValue, discountCapCents, minOrderAmountCents int64
	var usageLimit, usedCount int
	var validFrom, validUntil time.Time
	var isActive bool

	err := row.Scan(
		&id, &storedCode, &description,
		&discountType, &discountValue, &discountCapCents,
		&minOrderAmountCents, &usageLimit, &usedCount,
		&validFrom, &validUntil, &isActive,
	)
	if err != nil {
		return nil, err
	}

	voucherID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	discountCap, err := kernel.NewMoney(discountCapCents)
	if err != nil {
		return nil, err
	}

	discount, err := voucher.RestoreDiscount(voucher.DiscountType(discountType), discountValue, discountCap)
	if err != nil {
		return nil, err
	}

	minOrderAmount, err := kernel.NewMoney(minOrderAmountCents)
	if err != nil {
		return nil, err
	}

	return voucher.RestoreVoucher(
		voucherID, storedCode, description,
		discount, minOrderAmount,
		usageLimit, usedCount,
		validFrom, validUntil,
		isActive,
	)
}
