package dto

import (
	"github.com/google/uuid"

	"campushub_backend/internals/features/academics/classes/model"
)

type CreateClassRequest struct {
	Name           string     `json:"name,omitempty"`
	Department     string     `json:"department" validate:"required"`
	Semester       int        `json:"semester" validate:"required,min=1,max=8"`
	Section        string     `json:"section,omitempty"`
	AcademicYear   string     `json:"academic_year" validate:"required"`
	Batch          string     `json:"batch" validate:"required"`
	ClassTeacherID *uuid.UUID `json:"class_teacher_id,omitempty"`
	RoomNumber     *string    `json:"room_number,omitempty"`
}

type UpdateClassRequest struct {
	Name           *string    `json:"name,omitempty"`
	ClassTeacherID *uuid.UUID `json:"class_teacher_id,omitempty"`
	RoomNumber     *string    `json:"room_number,omitempty"`
	IsActive       *bool      `json:"is_active,omitempty"`
}

func (r CreateClassRequest) ToModel() model.ClassModel {
	section := r.Section
	if section == "" {
		section = "A"
	}
	m := model.ClassModel{
		Name:           r.Name,
		Department:     r.Department,
		Semester:       r.Semester,
		Section:        section,
		AcademicYear:   r.AcademicYear,
		Batch:          r.Batch,
		ClassTeacherID: r.ClassTeacherID,
		RoomNumber:     r.RoomNumber,
		IsActive:       true,
	}
	if m.Name == "" {
		m.Name = m.DisplayName()
	}
	return m
}
