package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentmodel "campushub_backend/internals/features/academics/students/model"
	subjectmodel "campushub_backend/internals/features/academics/subjects/model"
)

type ExamType string

const (
	ExamMidTerm    ExamType = "Mid-Term"
	ExamEndTerm    ExamType = "End-Term"
	ExamInternal   ExamType = "Internal"
	ExamPractical  ExamType = "Practical"
	ExamAssignment ExamType = "Assignment"
)

func (e ExamType) Valid() bool {
	switch e {
	case ExamMidTerm, ExamEndTerm, ExamInternal, ExamPractical, ExamAssignment:
		return true
	}
	return false
}

// MarksModel is one exam result. Re-entering marks for the same
// (student, subject, exam type, academic year, attempt) replaces the row.
type MarksModel struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_marks_key,priority:1;index" json:"student_id"`
	SubjectID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_marks_key,priority:2" json:"subject_id"`
	ExamType      ExamType  `gorm:"type:varchar(20);not null;uniqueIndex:uniq_marks_key,priority:3" json:"exam_type"`
	AcademicYear  string    `gorm:"size:9;not null;uniqueIndex:uniq_marks_key,priority:4;index" json:"academic_year"`
	AttemptNumber int       `gorm:"not null;default:1;uniqueIndex:uniq_marks_key,priority:5" json:"attempt_number"`

	ObtainedMarks float64 `gorm:"not null" json:"obtained_marks"`
	MaxMarks      float64 `gorm:"not null" json:"max_marks"`
	Percentage    float64 `gorm:"not null" json:"percentage"`
	Grade         string  `gorm:"size:2;not null" json:"grade"`
	Passed        bool    `gorm:"not null" json:"passed"`

	Semester  int       `gorm:"not null" json:"semester"`
	EnteredBy uuid.UUID `gorm:"type:uuid;not null" json:"entered_by"`
	Remarks   *string   `json:"remarks,omitempty"`

	Student *studentmodel.StudentModel `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Subject *subjectmodel.SubjectModel `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (MarksModel) TableName() string {
	return "marks"
}
