package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"campushub_backend/internals/features/finance/fees/model"
)

type CreateFeeStructureRequest struct {
	Department   string          `json:"department" validate:"required"`
	Course       string          `json:"course" validate:"required"`
	Semester     int             `json:"semester" validate:"required,min=1,max=8"`
	AcademicYear string          `json:"academic_year" validate:"required"`
	Components   datatypes.JSON  `json:"components" validate:"required"`
	TotalAmount  decimal.Decimal `json:"total_amount" validate:"required"`
	DueDate      string          `json:"due_date" validate:"required,datetime=2006-01-02"`
}

type UpdateFeeStructureRequest struct {
	Components  *datatypes.JSON  `json:"components,omitempty"`
	TotalAmount *decimal.Decimal `json:"total_amount,omitempty"`
	DueDate     *string          `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

type AssignFeeRequest struct {
	StudentID      uuid.UUID `json:"student_id" validate:"required"`
	FeeStructureID uuid.UUID `json:"fee_structure_id" validate:"required"`
}

type BulkAssignFeeRequest struct {
	FeeStructureID uuid.UUID   `json:"fee_structure_id" validate:"required"`
	StudentIDs     []uuid.UUID `json:"student_ids" validate:"required,min=1"`
}

type RecordPaymentRequest struct {
	FeeID   uuid.UUID       `json:"fee_id" validate:"required"`
	Amount  decimal.Decimal `json:"amount" validate:"required"`
	Mode    string          `json:"mode" validate:"required,oneof=Cash Card UPI Online Cheque DD"`
	Remarks *string         `json:"remarks,omitempty"`
}

type FeeStructureResponse struct {
	ID           uuid.UUID       `json:"id"`
	Department   string          `json:"department"`
	Course       string          `json:"course"`
	Semester     int             `json:"semester"`
	AcademicYear string          `json:"academic_year"`
	Components   datatypes.JSON  `json:"components"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	DueDate      time.Time       `json:"due_date"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
}

type FeeResponse struct {
	ID             uuid.UUID       `json:"id"`
	StudentID      uuid.UUID       `json:"student_id"`
	FeeStructureID uuid.UUID       `json:"fee_structure_id"`
	Semester       int             `json:"semester"`
	AcademicYear   string          `json:"academic_year"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	DueAmount      decimal.Decimal `json:"due_amount"`
	DueDate        time.Time       `json:"due_date"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}

type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	FeeID         uuid.UUID       `json:"fee_id"`
	StudentID     uuid.UUID       `json:"student_id"`
	Amount        decimal.Decimal `json:"amount"`
	Mode          string          `json:"mode"`
	TransactionID string          `json:"transaction_id"`
	ReceiptNumber string          `json:"receipt_number"`
	GatewayRef    *string         `json:"gateway_ref,omitempty"`
	Remarks       *string         `json:"remarks,omitempty"`
	PaidAt        time.Time       `json:"paid_at"`
}

func ToFeeStructureResponse(m model.FeeStructureModel) FeeStructureResponse {
	return FeeStructureResponse{
		ID:           m.ID,
		Department:   m.Department,
		Course:       m.Course,
		Semester:     m.Semester,
		AcademicYear: m.AcademicYear,
		Components:   m.Components,
		TotalAmount:  m.TotalAmount,
		DueDate:      m.DueDate,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}

func ToFeeStructureResponseList(ms []model.FeeStructureModel) []FeeStructureResponse {
	out := make([]FeeStructureResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToFeeStructureResponse(m))
	}
	return out
}

func ToFeeResponse(m model.FeeModel) FeeResponse {
	return FeeResponse{
		ID:             m.ID,
		StudentID:      m.StudentID,
		FeeStructureID: m.FeeStructureID,
		Semester:       m.Semester,
		AcademicYear:   m.AcademicYear,
		TotalAmount:    m.TotalAmount,
		PaidAmount:     m.PaidAmount,
		DueAmount:      m.DueAmount,
		DueDate:        m.DueDate,
		Status:         string(m.Status),
		CreatedAt:      m.CreatedAt,
	}
}

func ToFeeResponseList(ms []model.FeeModel) []FeeResponse {
	out := make([]FeeResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToFeeResponse(m))
	}
	return out
}

func ToPaymentResponse(m model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		ID:            m.ID,
		FeeID:         m.FeeID,
		StudentID:     m.StudentID,
		Amount:        m.Amount,
		Mode:          string(m.Mode),
		TransactionID: m.TransactionID,
		ReceiptNumber: m.ReceiptNumber,
		GatewayRef:    m.GatewayRef,
		Remarks:       m.Remarks,
		PaidAt:        m.PaidAt,
	}
}

func ToPaymentResponseList(ms []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToPaymentResponse(m))
	}
	return out
}
