package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ScholarshipModel is an admin-published scholarship scheme. Empty
// EligibleCategories or EligibleDepartments means no restriction on that
// axis.
type ScholarshipModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name                string          `gorm:"size:150;not null" json:"name"`
	Description         string          `gorm:"type:text;not null" json:"description"`
	Provider            string          `gorm:"size:150;not null" json:"provider"`
	Amount              decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	EligibleCategories  pq.StringArray  `gorm:"type:text[]" json:"eligible_categories"`
	EligibleDepartments pq.StringArray  `gorm:"type:text[]" json:"eligible_departments"`
	MinPercentage       *float64        `json:"min_percentage,omitempty"`
	MaxFamilyIncome     *float64        `json:"max_family_income,omitempty"`
	ApplicationDeadline time.Time       `gorm:"type:date;not null" json:"application_deadline"`
	DocumentsRequired   pq.StringArray  `gorm:"type:text[]" json:"documents_required"`
	IsActive            bool            `gorm:"not null;default:true;index" json:"is_active"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ScholarshipModel) TableName() string {
	return "scholarships"
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationApproved ApplicationStatus = "Approved"
	ApplicationRejected ApplicationStatus = "Rejected"
)

// ScholarshipApplication is one student's application to one scheme; at
// most one per (scholarship, student).
type ScholarshipApplication struct {
	ID            uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ScholarshipID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uniq_scholarship_application,priority:1" json:"scholarship_id"`
	StudentID     uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uniq_scholarship_application,priority:2;index" json:"student_id"`
	Status        ApplicationStatus `gorm:"type:varchar(10);not null;default:'Pending';index" json:"status"`
	Remarks       *string           `gorm:"type:text" json:"remarks,omitempty"`
	ReviewedBy    *uuid.UUID        `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time        `json:"reviewed_at,omitempty"`

	Scholarship *ScholarshipModel `gorm:"foreignKey:ScholarshipID" json:"scholarship,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ScholarshipApplication) TableName() string {
	return "scholarship_applications"
}
