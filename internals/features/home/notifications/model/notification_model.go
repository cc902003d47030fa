package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification types mirror the state transitions that generate them.
const (
	TypeInfo        = "info"
	TypeAttendance  = "attendance"
	TypeFees        = "fees"
	TypeMarks       = "marks"
	TypeLeave       = "leave"
	TypeScholarship = "scholarship"
	TypeGeneral     = "general"
)

type NotificationModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RecipientID   uuid.UUID  `gorm:"type:uuid;not null;index:ix_notifications_recipient" json:"recipient_id"`
	RecipientRole string     `gorm:"size:20" json:"recipient_role,omitempty"`
	Title         string     `gorm:"size:255;not null" json:"title"`
	Message       string     `gorm:"type:text;not null" json:"message"`
	Type          string     `gorm:"size:20;not null;default:'info'" json:"type"`
	IsRead        bool       `gorm:"not null;default:false;index:ix_notifications_recipient" json:"is_read"`
	Link          *string    `json:"link,omitempty"`
	SenderID      *uuid.UUID `gorm:"type:uuid" json:"sender_id,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
