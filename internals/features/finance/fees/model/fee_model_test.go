package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRecomputeStatus(t *testing.T) {
	now := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		paid    string
		due     string
		dueDate time.Time
		want    FeeStatus
	}{
		{"fully paid", "50000", "0", now.AddDate(0, 1, 0), FeePaid},
		{"fully paid past due date", "50000", "0", now.AddDate(0, -1, 0), FeePaid},
		{"partially paid", "20000", "30000", now.AddDate(0, 1, 0), FeePartial},
		{"partially paid past due date", "20000", "30000", now.AddDate(0, -1, 0), FeePartial},
		{"unpaid past due date", "0", "50000", now.AddDate(0, -1, 0), FeeOverdue},
		{"unpaid before due date", "0", "50000", now.AddDate(0, 1, 0), FeePending},
		{"unpaid on due date", "0", "50000", now, FeePending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FeeModel{
				PaidAmount: decimal.RequireFromString(tt.paid),
				DueAmount:  decimal.RequireFromString(tt.due),
				DueDate:    tt.dueDate,
			}
			f.RecomputeStatus(now)
			assert.Equal(t, tt.want, f.Status)
		})
	}
}

func TestPaymentModeValid(t *testing.T) {
	for _, m := range []PaymentMode{PayCash, PayCard, PayUPI, PayOnline, PayCheque, PayDD} {
		assert.True(t, m.Valid(), string(m))
	}
	assert.False(t, PaymentMode("Barter").Valid())
	assert.False(t, PaymentMode("").Valid())
}
