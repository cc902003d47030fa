package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classmodel "campushub_backend/internals/features/academics/classes/model"
	subjectmodel "campushub_backend/internals/features/academics/subjects/model"
	teachermodel "campushub_backend/internals/features/academics/teachers/model"
)

// TeachingAssignmentModel is the single source of truth for who teaches what
// to which class in a given academic year.
type TeachingAssignmentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TeacherID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_assignment_tuple,priority:1;index" json:"teacher_id"`
	ClassID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_assignment_tuple,priority:2" json:"class_id"`
	SubjectID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_assignment_tuple,priority:3" json:"subject_id"`
	AcademicYear string    `gorm:"size:12;not null;uniqueIndex:uniq_assignment_tuple,priority:4" json:"academic_year"`
	Semester     int       `gorm:"not null;check:semester >= 1 AND semester <= 8" json:"semester"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`

	Teacher *teachermodel.TeacherModel `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	Class   *classmodel.ClassModel     `gorm:"foreignKey:ClassID" json:"class,omitempty"`
	Subject *subjectmodel.SubjectModel `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (TeachingAssignmentModel) TableName() string {
	return "teaching_assignments"
}
