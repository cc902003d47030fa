package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"campushub_backend/internals/features/finance/fees/model"
)

func feeAccount(total, paid string) model.FeeModel {
	t := decimal.RequireFromString(total)
	p := decimal.RequireFromString(paid)
	return model.FeeModel{
		TotalAmount: t,
		PaidAmount:  p,
		DueAmount:   t.Sub(p),
		DueDate:     time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC),
	}
}

func assertBalanced(t *testing.T, fee model.FeeModel) {
	t.Helper()
	assert.True(t, fee.PaidAmount.Add(fee.DueAmount).Equal(fee.TotalAmount),
		"paid %s + due %s != total %s", fee.PaidAmount, fee.DueAmount, fee.TotalAmount)
}

func TestApplyToFee(t *testing.T) {
	now := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)

	t.Run("partial payment keeps balances consistent", func(t *testing.T) {
		fee := feeAccount("50000", "0")
		assertBalanced(t, fee)

		err := ApplyToFee(&fee, decimal.RequireFromString("20000"), now)
		assert.NoError(t, err)
		assertBalanced(t, fee)
		assert.True(t, fee.PaidAmount.Equal(decimal.RequireFromString("20000")))
		assert.Equal(t, model.FeePartial, fee.Status)
	})

	t.Run("paying the full due settles the account", func(t *testing.T) {
		fee := feeAccount("50000", "30000")
		err := ApplyToFee(&fee, decimal.RequireFromString("20000"), now)
		assert.NoError(t, err)
		assertBalanced(t, fee)
		assert.True(t, fee.DueAmount.IsZero())
		assert.Equal(t, model.FeePaid, fee.Status)
	})

	t.Run("sequence of payments holds the invariant throughout", func(t *testing.T) {
		fee := feeAccount("45000", "0")
		for _, amt := range []string{"10000", "15000.50", "19999.50"} {
			assert.NoError(t, ApplyToFee(&fee, decimal.RequireFromString(amt), now))
			assertBalanced(t, fee)
		}
		assert.Equal(t, model.FeePaid, fee.Status)
	})

	t.Run("amount over due is rejected and the fee is unchanged", func(t *testing.T) {
		fee := feeAccount("50000", "40000")
		before := fee

		err := ApplyToFee(&fee, decimal.RequireFromString("10000.01"), now)
		assert.ErrorIs(t, err, ErrAmountExceedsDue)
		assert.True(t, fee.PaidAmount.Equal(before.PaidAmount))
		assert.True(t, fee.DueAmount.Equal(before.DueAmount))
		assert.Equal(t, before.Status, fee.Status)
		assertBalanced(t, fee)
	})

	t.Run("zero and negative amounts are rejected", func(t *testing.T) {
		fee := feeAccount("50000", "0")
		assert.ErrorIs(t, ApplyToFee(&fee, decimal.Zero, now), ErrInvalidAmount)
		assert.ErrorIs(t, ApplyToFee(&fee, decimal.RequireFromString("-5"), now), ErrInvalidAmount)
		assert.True(t, fee.PaidAmount.IsZero())
		assertBalanced(t, fee)
	})
}
