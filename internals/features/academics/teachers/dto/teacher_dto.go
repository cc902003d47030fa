package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"campushub_backend/internals/features/academics/teachers/model"
)

type CreateTeacherRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Phone     *string `json:"phone,omitempty"`

	EmployeeID     string  `json:"employee_id" validate:"required"`
	Department     string  `json:"department" validate:"required"`
	Designation    string  `json:"designation" validate:"required"`
	Specialization *string `json:"specialization,omitempty"`
	Qualification  string  `json:"qualification" validate:"required"`
	Experience     int     `json:"experience" validate:"min=0"`
}

type UpdateTeacherRequest struct {
	Department     *string         `json:"department,omitempty"`
	Designation    *string         `json:"designation,omitempty"`
	Specialization *string         `json:"specialization,omitempty"`
	Qualification  *string         `json:"qualification,omitempty"`
	Experience     *int            `json:"experience,omitempty" validate:"omitempty,min=0"`
	Salary         *datatypes.JSON `json:"salary,omitempty"`
	IsActive       *bool           `json:"is_active,omitempty"`
}

type AssignSubjectsRequest struct {
	SubjectIDs []uuid.UUID `json:"subject_ids" validate:"required,min=1"`
}

type TeacherResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	EmployeeID     string    `json:"employee_id"`
	Department     string    `json:"department"`
	Designation    string    `json:"designation"`
	Specialization *string   `json:"specialization,omitempty"`
	Qualification  string    `json:"qualification"`
	Experience     int       `json:"experience"`
	JoiningDate    time.Time `json:"joining_date"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToTeacherResponse(m model.TeacherModel) TeacherResponse {
	return TeacherResponse{
		ID:             m.ID,
		UserID:         m.UserID,
		EmployeeID:     m.EmployeeID,
		Department:     m.Department,
		Designation:    m.Designation,
		Specialization: m.Specialization,
		Qualification:  m.Qualification,
		Experience:     m.Experience,
		JoiningDate:    m.JoiningDate,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
	}
}

func ToTeacherResponseList(ms []model.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToTeacherResponse(m))
	}
	return out
}
