package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/academics/marks/model"
)

type RegisterBacklogExamRequest struct {
	BacklogID    uuid.UUID `json:"backlog_id" validate:"required"`
	ExamDate     string    `json:"exam_date" validate:"required,datetime=2006-01-02"`
	AcademicYear string    `json:"academic_year,omitempty" validate:"omitempty,len=9"`
}

type UpdateBacklogAttemptRequest struct {
	Result        string   `json:"result" validate:"required,oneof=Pass Fail Absent"`
	ObtainedMarks *float64 `json:"obtained_marks,omitempty" validate:"omitempty,min=0"`
	MaxMarks      *float64 `json:"max_marks,omitempty" validate:"omitempty,gt=0"`
	Remarks       *string  `json:"remarks,omitempty"`
}

type BacklogAttemptResponse struct {
	ID            uuid.UUID `json:"id"`
	AttemptNumber int       `json:"attempt_number"`
	AcademicYear  string    `json:"academic_year"`
	ExamDate      time.Time `json:"exam_date"`
	ObtainedMarks *float64  `json:"obtained_marks,omitempty"`
	MaxMarks      *float64  `json:"max_marks,omitempty"`
	Result        *string   `json:"result,omitempty"`
	Remarks       *string   `json:"remarks,omitempty"`
}

type BacklogResponse struct {
	ID                   uuid.UUID                `json:"id"`
	StudentID            uuid.UUID                `json:"student_id"`
	SubjectID            uuid.UUID                `json:"subject_id"`
	SubjectName          string                   `json:"subject_name,omitempty"`
	SubjectCode          string                   `json:"subject_code,omitempty"`
	OriginalAcademicYear string                   `json:"original_academic_year"`
	Semester             int                      `json:"semester"`
	Status               string                   `json:"status"`
	OriginalMarks        float64                  `json:"original_marks"`
	OriginalPercentage   float64                  `json:"original_percentage"`
	ClearedDate          *time.Time               `json:"cleared_date,omitempty"`
	ClearedMarks         *float64                 `json:"cleared_marks,omitempty"`
	Attempts             []BacklogAttemptResponse `json:"attempts,omitempty"`
	CreatedAt            time.Time                `json:"created_at"`
}

func ToBacklogAttemptResponse(a model.BacklogAttempt) BacklogAttemptResponse {
	resp := BacklogAttemptResponse{
		ID:            a.ID,
		AttemptNumber: a.AttemptNumber,
		AcademicYear:  a.AcademicYear,
		ExamDate:      a.ExamDate,
		ObtainedMarks: a.ObtainedMarks,
		MaxMarks:      a.MaxMarks,
		Remarks:       a.Remarks,
	}
	if a.Result != nil {
		r := string(*a.Result)
		resp.Result = &r
	}
	return resp
}

func ToBacklogResponse(b model.BacklogModel) BacklogResponse {
	resp := BacklogResponse{
		ID:                   b.ID,
		StudentID:            b.StudentID,
		SubjectID:            b.SubjectID,
		OriginalAcademicYear: b.OriginalAcademicYear,
		Semester:             b.Semester,
		Status:               string(b.Status),
		OriginalMarks:        b.OriginalMarks,
		OriginalPercentage:   b.OriginalPercentage,
		ClearedDate:          b.ClearedDate,
		ClearedMarks:         b.ClearedMarks,
		CreatedAt:            b.CreatedAt,
	}
	if b.Subject != nil {
		resp.SubjectName = b.Subject.Name
		resp.SubjectCode = b.Subject.Code
	}
	for _, a := range b.Attempts {
		resp.Attempts = append(resp.Attempts, ToBacklogAttemptResponse(a))
	}
	return resp
}

func ToBacklogResponseList(bs []model.BacklogModel) []BacklogResponse {
	out := make([]BacklogResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, ToBacklogResponse(b))
	}
	return out
}
