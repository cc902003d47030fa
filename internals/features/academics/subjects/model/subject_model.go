package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SubjectModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code       string         `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Department string         `gorm:"size:100;not null;index" json:"department"`
	Semester   int            `gorm:"not null;check:semester >= 1 AND semester <= 8" json:"semester"`
	Credits    int            `gorm:"not null;check:credits >= 1 AND credits <= 6" json:"credits"`
	Type       string         `gorm:"size:30;not null;default:'Theory'" json:"type"` // Theory|Practical|Theory + Practical
	MaxMarks   datatypes.JSON `gorm:"type:jsonb" json:"max_marks,omitempty"`         // {theory,practical,internal}
	Syllabus   *string        `json:"syllabus,omitempty"`
	IsElective bool           `gorm:"not null;default:false" json:"is_elective"`
	IsActive   bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
