package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	subjectmodel "campushub_backend/internals/features/academics/subjects/model"
)

type StudentModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	RollNumber       string     `gorm:"size:30;uniqueIndex;not null" json:"roll_number"`
	EnrollmentNumber *string    `gorm:"size:30;uniqueIndex" json:"enrollment_number,omitempty"`
	AdmissionDate    time.Time  `gorm:"not null;default:now()" json:"admission_date"`
	Department       string     `gorm:"size:100;not null;index" json:"department"`
	Course           string     `gorm:"size:20;not null" json:"course"`
	Semester         int        `gorm:"not null;check:semester >= 1 AND semester <= 8" json:"semester"`
	Section          string     `gorm:"size:5;not null;default:'A'" json:"section"`
	Batch            string     `gorm:"size:20;not null" json:"batch"`
	BloodGroup       *string    `gorm:"size:5" json:"blood_group,omitempty"`
	DateOfBirth      time.Time  `gorm:"not null" json:"date_of_birth"`
	Gender           string     `gorm:"size:10;not null" json:"gender"`
	Category         string     `gorm:"size:20;not null;default:'General'" json:"category"` // General|OBC|SC|ST|EWS
	AadharNumber     *string    `gorm:"size:12" json:"aadhar_number,omitempty"`
	ParentGuardianID *uuid.UUID `gorm:"type:uuid;index" json:"parent_guardian_id,omitempty"`

	EnrolledSubjects []subjectmodel.SubjectModel `gorm:"many2many:student_subjects" json:"enrolled_subjects,omitempty"`

	// [{year,semester,sgpa,cgpa,remarks}]
	AcademicHistory datatypes.JSON `gorm:"type:jsonb" json:"academic_history,omitempty"`
	Documents       datatypes.JSON `gorm:"type:jsonb" json:"documents,omitempty"`

	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (StudentModel) TableName() string {
	return "students"
}

// AcademicTerm is one row of the academic history JSON.
type AcademicTerm struct {
	Year     string  `json:"year"`
	Semester int     `json:"semester"`
	SGPA     float64 `json:"sgpa"`
	CGPA     float64 `json:"cgpa"`
	Remarks  string  `json:"remarks,omitempty"`
}
