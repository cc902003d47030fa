package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/academics/parents/model"
)

type CreateParentRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Phone     *string `json:"phone,omitempty"`

	Relation               string   `json:"relation" validate:"required,oneof=Father Mother Guardian"`
	Occupation             *string  `json:"occupation,omitempty"`
	AnnualIncome           *float64 `json:"annual_income,omitempty"`
	AlternatePhone         *string  `json:"alternate_phone,omitempty"`
	PreferredContactMethod string   `json:"preferred_contact_method,omitempty" validate:"omitempty,oneof=Phone Email SMS"`
}

type UpdateParentRequest struct {
	Occupation             *string  `json:"occupation,omitempty"`
	AnnualIncome           *float64 `json:"annual_income,omitempty"`
	AlternatePhone         *string  `json:"alternate_phone,omitempty"`
	PreferredContactMethod *string  `json:"preferred_contact_method,omitempty" validate:"omitempty,oneof=Phone Email SMS"`
	IsActive               *bool    `json:"is_active,omitempty"`
}

type LinkStudentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
}

type ParentResponse struct {
	ID                     uuid.UUID `json:"id"`
	UserID                 uuid.UUID `json:"user_id"`
	Relation               string    `json:"relation"`
	Occupation             *string   `json:"occupation,omitempty"`
	AnnualIncome           *float64  `json:"annual_income,omitempty"`
	AlternatePhone         *string   `json:"alternate_phone,omitempty"`
	PreferredContactMethod string    `json:"preferred_contact_method"`
	IsActive               bool      `json:"is_active"`
	CreatedAt              time.Time `json:"created_at"`
}

func ToParentResponse(m model.ParentModel) ParentResponse {
	return ParentResponse{
		ID:                     m.ID,
		UserID:                 m.UserID,
		Relation:               m.Relation,
		Occupation:             m.Occupation,
		AnnualIncome:           m.AnnualIncome,
		AlternatePhone:         m.AlternatePhone,
		PreferredContactMethod: m.PreferredContactMethod,
		IsActive:               m.IsActive,
		CreatedAt:              m.CreatedAt,
	}
}

func ToParentResponseList(ms []model.ParentModel) []ParentResponse {
	out := make([]ParentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToParentResponse(m))
	}
	return out
}
