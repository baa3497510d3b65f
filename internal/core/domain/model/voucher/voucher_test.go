package voucher_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/voucher"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	windowStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)
	midWindow   = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
)

func percentageVoucher(t *testing.T, percent int64, cap int64, minOrder int64, usageLimit int) *voucher.Voucher {
	t.Helper()
	discount, err := voucher.NewPercentageDiscount(percent, kernel.NewMoneyFromUnits(cap))
	require.NoError(t, err)
	v, err := voucher.NewVoucher(
		kernel.NewUUID(),
		"SAVE10",
		"10% off",
		discount,
		kernel.NewMoneyFromUnits(minOrder),
		usageLimit,
		windowStart,
		windowEnd,
	)
	require.NoError(t, err)
	return v
}

func TestNewVoucher(t *testing.T) {
	t.Run("should normalize the code", func(t *testing.T) {
		discount := voucher.NewFreeShippingDiscount()

		v, err := voucher.NewVoucher(
			kernel.NewUUID(), "  freeship  ", "free delivery", discount,
			kernel.Money{}, 0, windowStart, windowEnd,
		)

		require.NoError(t, err)
		assert.Equal(t, "FREESHIP", v.Code())
		assert.True(t, v.IsActive())
		assert.Zero(t, v.UsedCount())
	})

	t.Run("should reject empty code", func(t *testing.T) {
		_, err := voucher.NewVoucher(
			kernel.NewUUID(), "   ", "", voucher.NewFreeShippingDiscount(),
			kernel.Money{}, 0, windowStart, windowEnd,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject inverted validity window", func(t *testing.T) {
		_, err := voucher.NewVoucher(
			kernel.NewUUID(), "X", "", voucher.NewFreeShippingDiscount(),
			kernel.Money{}, 0, windowEnd, windowStart,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var v voucher.Voucher

		require.ErrorIs(t, v.Validate(), voucher.ErrVoucherIsNotConstructed)
	})
}

func TestDiscount_Variants(t *testing.T) {
	t.Run("percentage should cap at max discount", func(t *testing.T) {
		discount, err := voucher.NewPercentageDiscount(10, kernel.NewMoneyFromUnits(20_000))
		require.NoError(t, err)

		amount, err := discount.Amount(kernel.NewMoneyFromUnits(300_000), kernel.Money{})

		require.NoError(t, err)
		assert.True(t, amount.IsEqual(kernel.NewMoneyFromUnits(20_000)))
	})

	t.Run("percentage without cap should not be limited", func(t *testing.T) {
		discount, err := voucher.NewPercentageDiscount(10, kernel.Money{})
		require.NoError(t, err)

		amount, err := discount.Amount(kernel.NewMoneyFromUnits(300_000), kernel.Money{})

		require.NoError(t, err)
		assert.True(t, amount.IsEqual(kernel.NewMoneyFromUnits(30_000)))
	})

	t.Run("percentage should reject out of range values", func(t *testing.T) {
		for _, percent := range []int64{0, -5, 101} {
			_, err := voucher.NewPercentageDiscount(percent, kernel.Money{})
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("fixed amount should cap at max discount", func(t *testing.T) {
		discount, err := voucher.NewFixedAmountDiscount(
			kernel.NewMoneyFromUnits(50_000), kernel.NewMoneyFromUnits(30_000))
		require.NoError(t, err)

		amount, err := discount.Amount(kernel.NewMoneyFromUnits(300_000), kernel.Money{})

		require.NoError(t, err)
		assert.True(t, amount.IsEqual(kernel.NewMoneyFromUnits(30_000)))
	})

	t.Run("free shipping should equal the delivery fee", func(t *testing.T) {
		discount := voucher.NewFreeShippingDiscount()

		amount, err := discount.Amount(kernel.NewMoneyFromUnits(300_000), kernel.NewMoneyFromUnits(18_000))

		require.NoError(t, err)
		assert.True(t, amount.IsEqual(kernel.NewMoneyFromUnits(18_000)))
	})

	t.Run("restore should round-trip the variant", func(t *testing.T) {
		discount, err := voucher.RestoreDiscount(voucher.Percentage, 15, kernel.NewMoneyFromUnits(25_000))

		require.NoError(t, err)
		assert.Equal(t, voucher.Percentage, discount.Type())
		assert.Equal(t, int64(15), discount.Value())
	})

	t.Run("restore should reject unknown type", func(t *testing.T) {
		_, err := voucher.RestoreDiscount(voucher.DiscountTypeUnknown, 10, kernel.Money{})

		require.Error(t, err)
	})
}

func TestVoucher_Evaluate(t *testing.T) {
	t.Run("should return capped percentage discount", func(t *testing.T) {
		v := percentageVoucher(t, 10, 20_000, 0, 0)

		amount, err := v.Evaluate(kernel.NewMoneyFromUnits(300_000), kernel.Money{}, midWindow)

		require.NoError(t, err)
		assert.True(t, amount.IsEqual(kernel.NewMoneyFromUnits(20_000)))
	})

	t.Run("should fail when deactivated", func(t *testing.T) {
		v := percentageVoucher(t, 10, 0, 0, 0)
		require.NoError(t, v.Deactivate())

		_, err := v.Evaluate(kernel.NewMoneyFromUnits(300_000), kernel.Money{}, midWindow)

		require.ErrorIs(t, err, voucher.ErrVoucherInactive)
	})

	t.Run("should fail outside the validity window", func(t *testing.T) {
		v := percentageVoucher(t, 10, 0, 0, 0)

		for _, now := range []time.Time{
			windowStart.Add(-time.Hour),
			windowEnd.Add(time.Hour),
		} {
			_, err := v.Evaluate(kernel.NewMoneyFromUnits(300_000), kernel.Money{}, now)
			require.ErrorIs(t, err, voucher.ErrVoucherInactive)
		}
	})

	t.Run("should fail when exhausted", func(t *testing.T) {
		v := percentageVoucher(t, 10, 0, 0, 1)
		require.NoError(t, v.MarkUsed())

		_, err := v.Evaluate(kernel.NewMoneyFromUnits(300_000), kernel.Money{}, midWindow)

		require.ErrorIs(t, err, voucher.ErrVoucherExhausted)
	})

	t.Run("should fail below minimum order", func(t *testing.T) {
		v := percentageVoucher(t, 10, 0, 200_000, 0)

		_, err := v.Evaluate(kernel.NewMoneyFromUnits(150_000), kernel.Money{}, midWindow)

		require.ErrorIs(t, err, voucher.ErrMinOrderNotMet)
	})

	t.Run("should check inactive before exhausted", func(t *testing.T) {
		v := percentageVoucher(t, 10, 0, 0, 1)
		require.NoError(t, v.MarkUsed())
		require.NoError(t, v.Deactivate())

		_, err := v.Evaluate(kernel.NewMoneyFromUnits(300_000), kernel.Money{}, midWindow)

		require.ErrorIs(t, err, voucher.ErrVoucherInactive)
	})
}

func TestVoucher_MarkUsed(t *testing.T) {
	t.Run("should increment the counter", func(t *testing.T) {
		v := percentageVoucher(t, 10, 0, 0, 2)

		require.NoError(t, v.MarkUsed())
		require.NoError(t, v.MarkUsed())

		assert.Equal(t, 2, v.UsedCount())
	})

	t.Run("should fail at the cap", func(t *testing.T) {
		v := percentageVoucher(t, 10, 0, 0, 1)
		require.NoError(t, v.MarkUsed())

		require.ErrorIs(t, v.MarkUsed(), voucher.ErrVoucherExhausted)
		assert.Equal(t, 1, v.UsedCount())
	})

	t.Run("should be unlimited without a cap", func(t *testing.T) {
		v := percentageVoucher(t, 10, 0, 0, 0)

		for range 100 {
			require.NoError(t, v.MarkUsed())
		}

		assert.Equal(t, 100, v.UsedCount())
	})
}

func TestVoucher_Expiry(t *testing.T) {
	v := percentageVoucher(t, 10, 0, 0, 0)

	assert.False(t, v.IsExpired(midWindow))
	assert.True(t, v.IsExpired(windowEnd.Add(time.Second)))
}

func TestRestoreVoucher(t *testing.T) {
	t.Run("should keep usage count and active flag", func(t *testing.T) {
		discount, err := voucher.NewPercentageDiscount(10, kernel.Money{})
		require.NoError(t, err)

		v, err := voucher.RestoreVoucher(
			kernel.NewUUID(), "SAVE10", "10% off", discount,
			kernel.NewMoneyFromUnits(100_000), 5, 3, windowStart, windowEnd, false,
		)

		require.NoError(t, err)
		assert.Equal(t, 3, v.UsedCount())
		assert.False(t, v.IsActive())
	})

	t.Run("should reject negative usage count", func(t *testing.T) {
		_, err := voucher.RestoreVoucher(
			kernel.NewUUID(), "SAVE10", "", voucher.NewFreeShippingDiscount(),
			kernel.Money{}, 0, -1, windowStart, windowEnd, true,
		)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
