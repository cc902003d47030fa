package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
	StatusLate    AttendanceStatus = "Late"
	StatusLeave   AttendanceStatus = "Leave"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusLeave:
		return true
	}
	return false
}

// CountsAsPresent reports whether the status counts toward the attendance
// percentage. Late counts as present; this is a fixed business rule.
func (s AttendanceStatus) CountsAsPresent() bool {
	return s == StatusPresent || s == StatusLate
}

// AttendanceModel is one record per (student, subject, date, lecture number).
// Records are upsert-only history; they are never soft-deleted.
type AttendanceModel struct {
	ID                   uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID            uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uniq_attendance_key,priority:1;index" json:"student_id"`
	SubjectID            uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uniq_attendance_key,priority:2" json:"subject_id"`
	Date                 time.Time        `gorm:"type:date;not null;uniqueIndex:uniq_attendance_key,priority:3;index" json:"date"`
	LectureNumber        int              `gorm:"not null;default:1;uniqueIndex:uniq_attendance_key,priority:4" json:"lecture_number"`
	TeacherID            uuid.UUID        `gorm:"type:uuid;not null" json:"teacher_id"`
	TeachingAssignmentID *uuid.UUID       `gorm:"type:uuid" json:"teaching_assignment_id,omitempty"`
	Status               AttendanceStatus `gorm:"type:varchar(10);not null" json:"status"`
	Remarks              *string          `json:"remarks,omitempty"`

	// Denormalized class tuple for fast reporting queries
	Semester   int    `gorm:"not null" json:"semester"`
	Department string `gorm:"size:100;not null;index" json:"department"`
	Section    string `gorm:"size:5;not null;default:'A'" json:"section"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}
