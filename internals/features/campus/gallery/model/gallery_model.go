package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryModel is one uploaded campus image. Uploads are converted to WebP
// before storage; SortOrder drives the public carousel.
type GalleryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Category    string    `gorm:"size:50;not null;default:'general';index" json:"category"`
	ImageURL    string    `gorm:"size:255;not null" json:"image_url"`
	UploadedBy  uuid.UUID `gorm:"type:uuid;not null" json:"uploaded_by"`
	IsCarousel  bool      `gorm:"not null;default:false;index" json:"is_carousel"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (GalleryModel) TableName() string {
	return "galleries"
}
