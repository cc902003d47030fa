package dto

import (
	"github.com/google/uuid"

	"campushub_backend/internals/features/academics/assignments/model"
)

type CreateAssignmentRequest struct {
	TeacherID    uuid.UUID `json:"teacher_id" validate:"required"`
	ClassID      uuid.UUID `json:"class_id" validate:"required"`
	SubjectID    uuid.UUID `json:"subject_id" validate:"required"`
	AcademicYear string    `json:"academic_year,omitempty"`
	Semester     int       `json:"semester" validate:"required,min=1,max=8"`
}

type UpdateAssignmentRequest struct {
	TeacherID *uuid.UUID `json:"teacher_id,omitempty"`
	IsActive  *bool      `json:"is_active,omitempty"`
}

func (r CreateAssignmentRequest) ToModel() model.TeachingAssignmentModel {
	return model.TeachingAssignmentModel{
		TeacherID:    r.TeacherID,
		ClassID:      r.ClassID,
		SubjectID:    r.SubjectID,
		AcademicYear: r.AcademicYear,
		Semester:     r.Semester,
		IsActive:     true,
	}
}
