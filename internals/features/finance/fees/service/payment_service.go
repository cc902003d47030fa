package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campushub_backend/internals/features/finance/fees/model"
)

var (
	ErrFeeNotFound      = errors.New("fee account not found")
	ErrInvalidAmount    = errors.New("payment amount must be positive")
	ErrAmountExceedsDue = errors.New("payment amount exceeds due amount")
)

type PaymentInput struct {
	FeeID       uuid.UUID
	Amount      decimal.Decimal
	Mode        model.PaymentMode
	CollectedBy *uuid.UUID
	GatewayRef  *string
	Remarks     *string
}

// ApplyToFee moves a validated amount onto the fee balances. Rejections
// leave the fee untouched; on success paid + due = total still holds.
func ApplyToFee(fee *model.FeeModel, amount decimal.Decimal, now time.Time) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(fee.DueAmount) {
		return ErrAmountExceedsDue
	}
	fee.PaidAmount = fee.PaidAmount.Add(amount)
	fee.DueAmount = fee.TotalAmount.Sub(fee.PaidAmount)
	fee.RecomputeStatus(now)
	return nil
}

// ApplyPayment records a payment against a fee account inside a single
// transaction. The fee row is locked for the duration so concurrent payments
// cannot overdraw the balance; paid + due = total holds before and after.
func ApplyPayment(db *gorm.DB, in PaymentInput) (*model.PaymentModel, *model.FeeModel, error) {
	if !in.Amount.IsPositive() {
		return nil, nil, ErrInvalidAmount
	}

	var payment model.PaymentModel
	var fee model.FeeModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&fee, "id = ?", in.FeeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFeeNotFound
			}
			return err
		}

		now := time.Now()
		if err := ApplyToFee(&fee, in.Amount, now); err != nil {
			return err
		}

		receipt, err := GenerateReceiptNumber(tx)
		if err != nil {
			return err
		}

		payment = model.PaymentModel{
			FeeID:         fee.ID,
			StudentID:     fee.StudentID,
			Amount:        in.Amount,
			Mode:          in.Mode,
			TransactionID: GenerateTransactionID(),
			ReceiptNumber: receipt,
			CollectedBy:   in.CollectedBy,
			GatewayRef:    in.GatewayRef,
			Remarks:       in.Remarks,
			PaidAt:        now,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		return tx.Save(&fee).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &payment, &fee, nil
}
