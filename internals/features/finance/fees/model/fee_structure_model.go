package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FeeStructureModel is the fee template for a (department, course, semester,
// academic year) tuple. Components is a JSONB breakdown, e.g.
// {"tuition": 45000, "library": 2000, "lab": 3000}.
type FeeStructureModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Department   string          `gorm:"size:100;not null;uniqueIndex:uniq_fee_structure,priority:1" json:"department"`
	Course       string          `gorm:"size:100;not null;uniqueIndex:uniq_fee_structure,priority:2" json:"course"`
	Semester     int             `gorm:"not null;uniqueIndex:uniq_fee_structure,priority:3" json:"semester"`
	AcademicYear string          `gorm:"size:9;not null;uniqueIndex:uniq_fee_structure,priority:4" json:"academic_year"`
	Components   datatypes.JSON  `gorm:"type:jsonb;not null" json:"components"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	DueDate      time.Time       `gorm:"type:date;not null" json:"due_date"`
	IsActive     bool            `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (FeeStructureModel) TableName() string {
	return "fee_structures"
}
