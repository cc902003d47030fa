package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMode string

const (
	PayCash   PaymentMode = "Cash"
	PayCard   PaymentMode = "Card"
	PayUPI    PaymentMode = "UPI"
	PayOnline PaymentMode = "Online"
	PayCheque PaymentMode = "Cheque"
	PayDD     PaymentMode = "DD"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case PayCash, PayCard, PayUPI, PayOnline, PayCheque, PayDD:
		return true
	}
	return false
}

// PaymentModel is an immutable receipt. Rows are only ever inserted; there
// is no soft delete and no update path.
type PaymentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FeeID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"fee_id"`
	StudentID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"student_id"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Mode          PaymentMode     `gorm:"type:varchar(10);not null" json:"mode"`
	TransactionID string          `gorm:"size:30;not null;uniqueIndex" json:"transaction_id"`
	ReceiptNumber string          `gorm:"size:20;not null;uniqueIndex" json:"receipt_number"`
	CollectedBy   *uuid.UUID      `gorm:"type:uuid" json:"collected_by,omitempty"`
	GatewayRef    *string         `gorm:"size:100" json:"gateway_ref,omitempty"`
	Remarks       *string         `json:"remarks,omitempty"`
	PaidAt        time.Time       `gorm:"not null" json:"paid_at"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
