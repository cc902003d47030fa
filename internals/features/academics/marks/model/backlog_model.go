package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentmodel "campushub_backend/internals/features/academics/students/model"
	subjectmodel "campushub_backend/internals/features/academics/subjects/model"
)

type BacklogStatus string

const (
	BacklogOpen       BacklogStatus = "Open"
	BacklogRegistered BacklogStatus = "Registered"
	BacklogCleared    BacklogStatus = "Cleared"
)

// BacklogModel tracks a failed End-Term subject until it is cleared.
// One row per (student, subject, original academic year); repeated failures
// in re-exams reuse the same row via attempts.
type BacklogModel struct {
	ID                   uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID            uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:uniq_backlog_key,priority:1;index" json:"student_id"`
	SubjectID            uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:uniq_backlog_key,priority:2" json:"subject_id"`
	OriginalAcademicYear string        `gorm:"size:9;not null;uniqueIndex:uniq_backlog_key,priority:3" json:"original_academic_year"`
	Semester             int           `gorm:"not null" json:"semester"`
	Status               BacklogStatus `gorm:"type:varchar(12);not null;default:'Open';index" json:"status"`
	OriginalMarks        float64       `gorm:"not null" json:"original_marks"`
	OriginalPercentage   float64       `gorm:"not null" json:"original_percentage"`

	ClearedDate  *time.Time `json:"cleared_date,omitempty"`
	ClearedMarks *float64   `json:"cleared_marks,omitempty"`

	Attempts []BacklogAttempt `gorm:"foreignKey:BacklogID" json:"attempts,omitempty"`

	Student *studentmodel.StudentModel `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Subject *subjectmodel.SubjectModel `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (BacklogModel) TableName() string {
	return "backlogs"
}

type AttemptResult string

const (
	AttemptPass   AttemptResult = "Pass"
	AttemptFail   AttemptResult = "Fail"
	AttemptAbsent AttemptResult = "Absent"
)

func (r AttemptResult) Valid() bool {
	switch r {
	case AttemptPass, AttemptFail, AttemptAbsent:
		return true
	}
	return false
}

// BacklogAttempt is one re-exam attempt against a backlog. Result stays nil
// until the attempt is graded; an absent student is recorded distinctly from
// a zero-mark fail.
type BacklogAttempt struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BacklogID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"backlog_id"`
	AttemptNumber int            `gorm:"not null" json:"attempt_number"`
	AcademicYear  string         `gorm:"size:9;not null" json:"academic_year"`
	ExamDate      time.Time      `gorm:"type:date;not null" json:"exam_date"`
	ObtainedMarks *float64       `json:"obtained_marks,omitempty"`
	MaxMarks      *float64       `json:"max_marks,omitempty"`
	Result        *AttemptResult `gorm:"type:varchar(6)" json:"result,omitempty"`
	Remarks       *string        `json:"remarks,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BacklogAttempt) TableName() string {
	return "backlog_attempts"
}
