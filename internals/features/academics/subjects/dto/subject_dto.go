package dto

import (
	"gorm.io/datatypes"

	"campushub_backend/internals/features/academics/subjects/model"
)

type CreateSubjectRequest struct {
	Code       string         `json:"code" validate:"required"`
	Name       string         `json:"name" validate:"required"`
	Department string         `json:"department" validate:"required"`
	Semester   int            `json:"semester" validate:"required,min=1,max=8"`
	Credits    int            `json:"credits" validate:"required,min=1,max=6"`
	Type       string         `json:"type,omitempty" validate:"omitempty,oneof='Theory' 'Practical' 'Theory + Practical'"`
	MaxMarks   datatypes.JSON `json:"max_marks,omitempty"`
	Syllabus   *string        `json:"syllabus,omitempty"`
	IsElective bool           `json:"is_elective"`
}

type UpdateSubjectRequest struct {
	Name       *string         `json:"name,omitempty"`
	Credits    *int            `json:"credits,omitempty" validate:"omitempty,min=1,max=6"`
	Type       *string         `json:"type,omitempty" validate:"omitempty,oneof='Theory' 'Practical' 'Theory + Practical'"`
	MaxMarks   *datatypes.JSON `json:"max_marks,omitempty"`
	Syllabus   *string         `json:"syllabus,omitempty"`
	IsElective *bool           `json:"is_elective,omitempty"`
	IsActive   *bool           `json:"is_active,omitempty"`
}

func (r CreateSubjectRequest) ToModel() model.SubjectModel {
	subjectType := r.Type
	if subjectType == "" {
		subjectType = "Theory"
	}
	return model.SubjectModel{
		Code:       r.Code,
		Name:       r.Name,
		Department: r.Department,
		Semester:   r.Semester,
		Credits:    r.Credits,
		Type:       subjectType,
		MaxMarks:   r.MaxMarks,
		Syllabus:   r.Syllabus,
		IsElective: r.IsElective,
		IsActive:   true,
	}
}
