package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/home/notifications/model"
)

type CreateNotificationRequest struct {
	RecipientID uuid.UUID `json:"recipient_id" validate:"required"`
	Role        string    `json:"role" validate:"required,oneof=admin teacher student parent"`
	Title       string    `json:"title" validate:"required"`
	Message     string    `json:"message" validate:"required"`
	Type        string    `json:"type" validate:"required"`
	Link        *string   `json:"link,omitempty"`
}

type BroadcastRequest struct {
	Roles   []string `json:"roles" validate:"required,min=1,dive,oneof=admin teacher student parent"`
	Title   string   `json:"title" validate:"required"`
	Message string   `json:"message" validate:"required"`
	Type    string   `json:"type" validate:"required"`
	Link    *string  `json:"link,omitempty"`
}

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	Link      *string   `json:"link,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ToNotificationResponse(m model.NotificationModel) NotificationResponse {
	return NotificationResponse{
		ID:        m.ID,
		Title:     m.Title,
		Message:   m.Message,
		Type:      m.Type,
		IsRead:    m.IsRead,
		Link:      m.Link,
		CreatedAt: m.CreatedAt,
	}
}

func ToNotificationResponseList(ms []model.NotificationModel) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToNotificationResponse(m))
	}
	return out
}
