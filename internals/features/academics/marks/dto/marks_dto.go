package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/academics/marks/model"
)

type MarkEntry struct {
	StudentID     uuid.UUID `json:"student_id" validate:"required"`
	ObtainedMarks float64   `json:"obtained_marks" validate:"min=0"`
	Remarks       *string   `json:"remarks,omitempty"`
}

type EnterMarksRequest struct {
	SubjectID    uuid.UUID   `json:"subject_id" validate:"required"`
	ExamType     string      `json:"exam_type" validate:"required,oneof=Mid-Term End-Term Internal Practical Assignment"`
	MaxMarks     float64     `json:"max_marks" validate:"required,gt=0"`
	AcademicYear string      `json:"academic_year,omitempty"`
	Semester     int         `json:"semester" validate:"required,min=1,max=8"`
	Entries      []MarkEntry `json:"marks_data" validate:"required,min=1,dive"`
}

type MarksResponse struct {
	ID            uuid.UUID `json:"id"`
	StudentID     uuid.UUID `json:"student_id"`
	SubjectID     uuid.UUID `json:"subject_id"`
	SubjectName   string    `json:"subject_name,omitempty"`
	SubjectCode   string    `json:"subject_code,omitempty"`
	ExamType      string    `json:"exam_type"`
	AcademicYear  string    `json:"academic_year"`
	AttemptNumber int       `json:"attempt_number"`
	ObtainedMarks float64   `json:"obtained_marks"`
	MaxMarks      float64   `json:"max_marks"`
	Percentage    float64   `json:"percentage"`
	Grade         string    `json:"grade"`
	Passed        bool      `json:"passed"`
	Semester      int       `json:"semester"`
	Remarks       *string   `json:"remarks,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToMarksResponse(m model.MarksModel) MarksResponse {
	resp := MarksResponse{
		ID:            m.ID,
		StudentID:     m.StudentID,
		SubjectID:     m.SubjectID,
		ExamType:      string(m.ExamType),
		AcademicYear:  m.AcademicYear,
		AttemptNumber: m.AttemptNumber,
		ObtainedMarks: m.ObtainedMarks,
		MaxMarks:      m.MaxMarks,
		Percentage:    m.Percentage,
		Grade:         m.Grade,
		Passed:        m.Passed,
		Semester:      m.Semester,
		Remarks:       m.Remarks,
		CreatedAt:     m.CreatedAt,
	}
	if m.Subject != nil {
		resp.SubjectName = m.Subject.Name
		resp.SubjectCode = m.Subject.Code
	}
	return resp
}

func ToMarksResponseList(ms []model.MarksModel) []MarksResponse {
	out := make([]MarksResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToMarksResponse(m))
	}
	return out
}
