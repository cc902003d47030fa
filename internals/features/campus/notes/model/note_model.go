package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NoteModel is shared study material. File holds the upload metadata as
// JSONB: {"url": ..., "name": ..., "size": ..., "mime": ...}.
type NoteModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	SubjectID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"subject_id"`
	Semester    int            `gorm:"not null;index" json:"semester"`
	Department  string         `gorm:"size:100;not null;index" json:"department"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	File        datatypes.JSON `gorm:"type:jsonb;not null" json:"file"`
	UploadedBy  uuid.UUID      `gorm:"type:uuid;not null" json:"uploaded_by"`
	Downloads   int            `gorm:"not null;default:0" json:"downloads"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (NoteModel) TableName() string {
	return "notes"
}
