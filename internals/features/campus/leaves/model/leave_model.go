package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveStatus string

const (
	LeavePending   LeaveStatus = "Pending"
	LeaveApproved  LeaveStatus = "Approved"
	LeaveRejected  LeaveStatus = "Rejected"
	LeaveCancelled LeaveStatus = "Cancelled"
)

type LeaveType string

const (
	LeaveSick     LeaveType = "Sick"
	LeaveCasual   LeaveType = "Casual"
	LeaveMedical  LeaveType = "Medical"
	LeavePersonal LeaveType = "Personal"
	LeaveOther    LeaveType = "Other"
)

func (t LeaveType) Valid() bool {
	switch t {
	case LeaveSick, LeaveCasual, LeaveMedical, LeavePersonal, LeaveOther:
		return true
	}
	return false
}

// LeaveModel is a leave application by a student or teacher. Approved,
// Rejected and Cancelled are terminal; only the applicant may cancel and
// only while still Pending.
type LeaveModel struct {
	ID            uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ApplicantID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"applicant_id"`
	ApplicantRole string      `gorm:"size:20;not null" json:"applicant_role"`
	Type          LeaveType   `gorm:"type:varchar(10);not null" json:"type"`
	StartDate     time.Time   `gorm:"type:date;not null" json:"start_date"`
	EndDate       time.Time   `gorm:"type:date;not null" json:"end_date"`
	Days          int         `gorm:"not null" json:"days"`
	Reason        string      `gorm:"type:text;not null" json:"reason"`
	Attachment    *string     `gorm:"size:255" json:"attachment,omitempty"`
	Status        LeaveStatus `gorm:"type:varchar(10);not null;default:'Pending';index" json:"status"`

	ReviewedBy     *uuid.UUID `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
	ReviewComments *string    `gorm:"type:text" json:"review_comments,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (LeaveModel) TableName() string {
	return "leaves"
}
