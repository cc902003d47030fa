package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"campushub_backend/internals/features/campus/scholarships/model"
)

type CreateScholarshipRequest struct {
	Name                string          `json:"name" validate:"required"`
	Description         string          `json:"description" validate:"required"`
	Provider            string          `json:"provider" validate:"required"`
	Amount              decimal.Decimal `json:"amount" validate:"required"`
	EligibleCategories  []string        `json:"eligible_categories,omitempty"`
	EligibleDepartments []string        `json:"eligible_departments,omitempty"`
	MinPercentage       *float64        `json:"min_percentage,omitempty"`
	MaxFamilyIncome     *float64        `json:"max_family_income,omitempty"`
	ApplicationDeadline string          `json:"application_deadline" validate:"required,datetime=2006-01-02"`
	DocumentsRequired   []string        `json:"documents_required,omitempty"`
}

type UpdateScholarshipRequest struct {
	Name                *string          `json:"name,omitempty"`
	Description         *string          `json:"description,omitempty"`
	Amount              *decimal.Decimal `json:"amount,omitempty"`
	ApplicationDeadline *string          `json:"application_deadline,omitempty" validate:"omitempty,datetime=2006-01-02"`
	IsActive            *bool            `json:"is_active,omitempty"`
}

type ReviewApplicationRequest struct {
	Status  string  `json:"status" validate:"required,oneof=Approved Rejected"`
	Remarks *string `json:"remarks,omitempty"`
}

type ScholarshipResponse struct {
	ID                  uuid.UUID       `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Provider            string          `json:"provider"`
	Amount              decimal.Decimal `json:"amount"`
	EligibleCategories  pq.StringArray  `json:"eligible_categories"`
	EligibleDepartments pq.StringArray  `json:"eligible_departments"`
	MinPercentage       *float64        `json:"min_percentage,omitempty"`
	MaxFamilyIncome     *float64        `json:"max_family_income,omitempty"`
	ApplicationDeadline time.Time       `json:"application_deadline"`
	DocumentsRequired   pq.StringArray  `json:"documents_required"`
	IsActive            bool            `json:"is_active"`
	CreatedAt           time.Time       `json:"created_at"`
}

type ApplicationResponse struct {
	ID              uuid.UUID  `json:"id"`
	ScholarshipID   uuid.UUID  `json:"scholarship_id"`
	ScholarshipName string     `json:"scholarship_name,omitempty"`
	StudentID       uuid.UUID  `json:"student_id"`
	Status          string     `json:"status"`
	Remarks         *string    `json:"remarks,omitempty"`
	ReviewedBy      *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func ToScholarshipResponse(m model.ScholarshipModel) ScholarshipResponse {
	return ScholarshipResponse{
		ID:                  m.ID,
		Name:                m.Name,
		Description:         m.Description,
		Provider:            m.Provider,
		Amount:              m.Amount,
		EligibleCategories:  m.EligibleCategories,
		EligibleDepartments: m.EligibleDepartments,
		MinPercentage:       m.MinPercentage,
		MaxFamilyIncome:     m.MaxFamilyIncome,
		ApplicationDeadline: m.ApplicationDeadline,
		DocumentsRequired:   m.DocumentsRequired,
		IsActive:            m.IsActive,
		CreatedAt:           m.CreatedAt,
	}
}

func ToScholarshipResponseList(ms []model.ScholarshipModel) []ScholarshipResponse {
	out := make([]ScholarshipResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToScholarshipResponse(m))
	}
	return out
}

func ToApplicationResponse(m model.ScholarshipApplication) ApplicationResponse {
	resp := ApplicationResponse{
		ID:            m.ID,
		ScholarshipID: m.ScholarshipID,
		StudentID:     m.StudentID,
		Status:        string(m.Status),
		Remarks:       m.Remarks,
		ReviewedBy:    m.ReviewedBy,
		ReviewedAt:    m.ReviewedAt,
		CreatedAt:     m.CreatedAt,
	}
	if m.Scholarship != nil {
		resp.ScholarshipName = m.Scholarship.Name
	}
	return resp
}

func ToApplicationResponseList(ms []model.ScholarshipApplication) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToApplicationResponse(m))
	}
	return out
}
