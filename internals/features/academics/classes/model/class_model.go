package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassModel is a (department, semester, section, academic year) cohort.
type ClassModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Department     string         `gorm:"size:100;not null;uniqueIndex:uniq_class_tuple,priority:1" json:"department"`
	Semester       int            `gorm:"not null;uniqueIndex:uniq_class_tuple,priority:2;check:semester >= 1 AND semester <= 8" json:"semester"`
	Section        string         `gorm:"size:5;not null;default:'A';uniqueIndex:uniq_class_tuple,priority:3" json:"section"`
	AcademicYear   string         `gorm:"size:12;not null;uniqueIndex:uniq_class_tuple,priority:4" json:"academic_year"`
	Batch          string         `gorm:"size:20;not null" json:"batch"`
	ClassTeacherID *uuid.UUID     `gorm:"type:uuid" json:"class_teacher_id,omitempty"`
	RoomNumber     *string        `gorm:"size:20" json:"room_number,omitempty"`
	Strength       int            `gorm:"not null;default:0" json:"strength"`
	IsActive       bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ClassModel) TableName() string {
	return "classes"
}

func (m *ClassModel) DisplayName() string {
	return fmt.Sprintf("%s - Sem %d - Sec %s", m.Department, m.Semester, m.Section)
}
