package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParentModel struct {
	ID                     uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID                 uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Relation               string         `gorm:"size:20;not null" json:"relation"` // Father|Mother|Guardian
	Occupation             *string        `gorm:"size:100" json:"occupation,omitempty"`
	AnnualIncome           *float64       `json:"annual_income,omitempty"`
	AlternatePhone         *string        `gorm:"size:20" json:"alternate_phone,omitempty"`
	PreferredContactMethod string         `gorm:"size:20;not null;default:'Phone'" json:"preferred_contact_method"`
	IsActive               bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt              time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt              gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ParentModel) TableName() string {
	return "parents"
}
