package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/academics/attendance/model"
)

// One student row inside a bulk marking request.
type MarkEntry struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=Present Absent Late Leave"`
	Remarks   *string   `json:"remarks,omitempty"`
}

type MarkAttendanceRequest struct {
	AssignmentID  uuid.UUID   `json:"assignment_id" validate:"required"`
	Date          string      `json:"date" validate:"required,datetime=2006-01-02"`
	LectureNumber int         `json:"lecture_number" validate:"omitempty,min=1"`
	Entries       []MarkEntry `json:"attendance_data" validate:"required,min=1,dive"`
}

type UpdateAttendanceRequest struct {
	Status  *string `json:"status,omitempty" validate:"omitempty,oneof=Present Absent Late Leave"`
	Remarks *string `json:"remarks,omitempty"`
}

type AttendanceResponse struct {
	ID            uuid.UUID `json:"id"`
	StudentID     uuid.UUID `json:"student_id"`
	SubjectID     uuid.UUID `json:"subject_id"`
	TeacherID     uuid.UUID `json:"teacher_id"`
	Date          string    `json:"date"`
	LectureNumber int       `json:"lecture_number"`
	Status        string    `json:"status"`
	Remarks       *string   `json:"remarks,omitempty"`
	Semester      int       `json:"semester"`
	Department    string    `json:"department"`
	Section       string    `json:"section"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToAttendanceResponse(m model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		ID:            m.ID,
		StudentID:     m.StudentID,
		SubjectID:     m.SubjectID,
		TeacherID:     m.TeacherID,
		Date:          m.Date.Format("2006-01-02"),
		LectureNumber: m.LectureNumber,
		Status:        string(m.Status),
		Remarks:       m.Remarks,
		Semester:      m.Semester,
		Department:    m.Department,
		Section:       m.Section,
		CreatedAt:     m.CreatedAt,
	}
}

func ToAttendanceResponseList(ms []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToAttendanceResponse(m))
	}
	return out
}
