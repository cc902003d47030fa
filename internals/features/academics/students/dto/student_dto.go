package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"campushub_backend/internals/features/academics/students/model"
)

type CreateStudentRequest struct {
	// account
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     *string `json:"phone,omitempty"`

	// profile
	RollNumber       string     `json:"roll_number" validate:"required"`
	EnrollmentNumber *string    `json:"enrollment_number,omitempty"`
	Department       string     `json:"department" validate:"required"`
	Course           string     `json:"course" validate:"required"`
	Semester         int        `json:"semester" validate:"required,min=1,max=8"`
	Section          string     `json:"section,omitempty"`
	Batch            string     `json:"batch" validate:"required"`
	DateOfBirth      string     `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender           string     `json:"gender" validate:"required,oneof=Male Female Other"`
	Category         string     `json:"category,omitempty" validate:"omitempty,oneof=General OBC SC ST EWS"`
	BloodGroup       *string    `json:"blood_group,omitempty"`
	AadharNumber     *string    `json:"aadhar_number,omitempty"`
	ParentGuardianID *uuid.UUID `json:"parent_guardian_id,omitempty"`
}

type UpdateStudentRequest struct {
	Department       *string    `json:"department,omitempty"`
	Course           *string    `json:"course,omitempty"`
	Semester         *int       `json:"semester,omitempty" validate:"omitempty,min=1,max=8"`
	Section          *string    `json:"section,omitempty"`
	Batch            *string    `json:"batch,omitempty"`
	Category         *string    `json:"category,omitempty" validate:"omitempty,oneof=General OBC SC ST EWS"`
	BloodGroup       *string    `json:"blood_group,omitempty"`
	ParentGuardianID *uuid.UUID `json:"parent_guardian_id,omitempty"`
	IsActive         *bool      `json:"is_active,omitempty"`
}

type AppendAcademicTermRequest struct {
	Year     string  `json:"year" validate:"required"`
	Semester int     `json:"semester" validate:"required,min=1,max=8"`
	SGPA     float64 `json:"sgpa" validate:"min=0,max=10"`
	CGPA     float64 `json:"cgpa" validate:"min=0,max=10"`
	Remarks  string  `json:"remarks,omitempty"`
}

type EnrollSubjectsRequest struct {
	SubjectIDs []uuid.UUID `json:"subject_ids" validate:"required,min=1"`
}

type StudentResponse struct {
	ID               uuid.UUID      `json:"id"`
	UserID           uuid.UUID      `json:"user_id"`
	RollNumber       string         `json:"roll_number"`
	EnrollmentNumber *string        `json:"enrollment_number,omitempty"`
	AdmissionDate    time.Time      `json:"admission_date"`
	Department       string         `json:"department"`
	Course           string         `json:"course"`
	Semester         int            `json:"semester"`
	Section          string         `json:"section"`
	Batch            string         `json:"batch"`
	DateOfBirth      time.Time      `json:"date_of_birth"`
	Gender           string         `json:"gender"`
	Category         string         `json:"category"`
	BloodGroup       *string        `json:"blood_group,omitempty"`
	ParentGuardianID *uuid.UUID     `json:"parent_guardian_id,omitempty"`
	AcademicHistory  datatypes.JSON `json:"academic_history,omitempty"`
	IsActive         bool           `json:"is_active"`
	CreatedAt        time.Time      `json:"created_at"`
}

func ToStudentResponse(m model.StudentModel) StudentResponse {
	return StudentResponse{
		ID:               m.ID,
		UserID:           m.UserID,
		RollNumber:       m.RollNumber,
		EnrollmentNumber: m.EnrollmentNumber,
		AdmissionDate:    m.AdmissionDate,
		Department:       m.Department,
		Course:           m.Course,
		Semester:         m.Semester,
		Section:          m.Section,
		Batch:            m.Batch,
		DateOfBirth:      m.DateOfBirth,
		Gender:           m.Gender,
		Category:         m.Category,
		BloodGroup:       m.BloodGroup,
		ParentGuardianID: m.ParentGuardianID,
		AcademicHistory:  m.AcademicHistory,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
	}
}

func ToStudentResponseList(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToStudentResponse(m))
	}
	return out
}
