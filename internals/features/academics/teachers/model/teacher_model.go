package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	subjectmodel "campushub_backend/internals/features/academics/subjects/model"
)

type TeacherModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	EmployeeID     string    `gorm:"size:30;uniqueIndex;not null" json:"employee_id"`
	Department     string    `gorm:"size:100;not null;index" json:"department"`
	Designation    string    `gorm:"size:50;not null" json:"designation"`
	Specialization *string   `gorm:"size:255" json:"specialization,omitempty"`
	Qualification  string    `gorm:"size:255;not null" json:"qualification"`
	Experience     int       `gorm:"not null;default:0" json:"experience"`
	JoiningDate    time.Time `gorm:"not null;default:now()" json:"joining_date"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	Gender         *string    `gorm:"size:10" json:"gender,omitempty"`

	Subjects []subjectmodel.SubjectModel `gorm:"many2many:teacher_subjects" json:"subjects,omitempty"`

	// [{department,semester,section,subject_id}] summary written by assignment sync
	AssignedClasses datatypes.JSON `gorm:"type:jsonb" json:"assigned_classes,omitempty"`
	Salary          datatypes.JSON `gorm:"type:jsonb" json:"salary,omitempty"` // {basic,allowances,deductions}
	Documents       datatypes.JSON `gorm:"type:jsonb" json:"documents,omitempty"`

	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
