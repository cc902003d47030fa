package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	studentmodel "campushub_backend/internals/features/academics/students/model"
)

type FeeStatus string

const (
	FeePending FeeStatus = "Pending"
	FeePartial FeeStatus = "Partial"
	FeePaid    FeeStatus = "Paid"
	FeeOverdue FeeStatus = "Overdue"
)

// FeeModel is one student's fee account for a semester. The amounts hold the
// invariant paid + due = total at all times; payments mutate paid and due
// inside a row-locked transaction.
type FeeModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uniq_fee_key,priority:1;index" json:"student_id"`
	FeeStructureID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uniq_fee_key,priority:2" json:"fee_structure_id"`
	Semester       int             `gorm:"not null" json:"semester"`
	AcademicYear   string          `gorm:"size:9;not null;index" json:"academic_year"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	PaidAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"paid_amount"`
	DueAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"due_amount"`
	DueDate        time.Time       `gorm:"type:date;not null" json:"due_date"`
	Status         FeeStatus       `gorm:"type:varchar(10);not null;default:'Pending';index" json:"status"`

	Student      *studentmodel.StudentModel `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	FeeStructure *FeeStructureModel         `gorm:"foreignKey:FeeStructureID" json:"fee_structure,omitempty"`
	Payments     []PaymentModel             `gorm:"foreignKey:FeeID" json:"payments,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (FeeModel) TableName() string {
	return "fees"
}

// RecomputeStatus derives the status from the balances. Overdue is only set
// for unpaid accounts past their due date.
func (f *FeeModel) RecomputeStatus(now time.Time) {
	switch {
	case f.DueAmount.IsZero():
		f.Status = FeePaid
	case f.PaidAmount.IsPositive():
		f.Status = FeePartial
	case now.After(f.DueDate):
		f.Status = FeeOverdue
	default:
		f.Status = FeePending
	}
}
