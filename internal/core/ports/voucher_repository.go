package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/voucher"
)

// VoucherRepository defines the persistence contract for vouchers.
type VoucherRepository interface {
	// Get retrieves a voucher by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*voucher.Voucher, error)

	// GetByCode retrieves a voucher by its normalized code.
	GetByCode(ctx context.Context, code string) (*voucher.Voucher, error)

	// Update persists changes to an existing voucher, including its usage
	// counter and active flag.
	Update(ctx context.Context, aggregate *voucher.Voucher) error

	// GetExpiredActive retrieves active vouchers whose validity window
	// ended before the given time. Used by the expiry job.
	GetExpiredActive(ctx context.Context, now time.Time) ([]*voucher.Voucher, error)
}
