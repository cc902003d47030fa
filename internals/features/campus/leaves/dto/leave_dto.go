package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/campus/leaves/model"
)

type ApplyLeaveRequest struct {
	Type      string  `json:"type" validate:"required,oneof=Sick Casual Medical Personal Other"`
	StartDate string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string  `json:"reason" validate:"required,min=10"`
	Attachment *string `json:"attachment,omitempty"`
}

type ReviewLeaveRequest struct {
	Status   string  `json:"status" validate:"required,oneof=Approved Rejected"`
	Comments *string `json:"comments,omitempty"`
}

type LeaveResponse struct {
	ID             uuid.UUID  `json:"id"`
	ApplicantID    uuid.UUID  `json:"applicant_id"`
	ApplicantRole  string     `json:"applicant_role"`
	Type           string     `json:"type"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        time.Time  `json:"end_date"`
	Days           int        `json:"days"`
	Reason         string     `json:"reason"`
	Attachment     *string    `json:"attachment,omitempty"`
	Status         string     `json:"status"`
	ReviewedBy     *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
	ReviewComments *string    `json:"review_comments,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func ToLeaveResponse(m model.LeaveModel) LeaveResponse {
	return LeaveResponse{
		ID:             m.ID,
		ApplicantID:    m.ApplicantID,
		ApplicantRole:  m.ApplicantRole,
		Type:           string(m.Type),
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		Days:           m.Days,
		Reason:         m.Reason,
		Attachment:     m.Attachment,
		Status:         string(m.Status),
		ReviewedBy:     m.ReviewedBy,
		ReviewedAt:     m.ReviewedAt,
		ReviewComments: m.ReviewComments,
		CreatedAt:      m.CreatedAt,
	}
}

func ToLeaveResponseList(ms []model.LeaveModel) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToLeaveResponse(m))
	}
	return out
}
