package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"campushub_backend/internals/features/campus/notes/model"
)

type CreateNoteRequest struct {
	Title       string         `json:"title" validate:"required"`
	Description *string        `json:"description,omitempty"`
	SubjectID   uuid.UUID      `json:"subject_id" validate:"required"`
	Semester    int            `json:"semester" validate:"required,min=1,max=8"`
	Department  string         `json:"department" validate:"required"`
	Tags        []string       `json:"tags,omitempty"`
	File        datatypes.JSON `json:"file" validate:"required"`
}

type UpdateNoteRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

type NoteResponse struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	SubjectID   uuid.UUID      `json:"subject_id"`
	Semester    int            `json:"semester"`
	Department  string         `json:"department"`
	Tags        pq.StringArray `json:"tags"`
	File        datatypes.JSON `json:"file"`
	UploadedBy  uuid.UUID      `json:"uploaded_by"`
	Downloads   int            `json:"downloads"`
	CreatedAt   time.Time      `json:"created_at"`
}

func ToNoteResponse(m model.NoteModel) NoteResponse {
	return NoteResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		SubjectID:   m.SubjectID,
		Semester:    m.Semester,
		Department:  m.Department,
		Tags:        m.Tags,
		File:        m.File,
		UploadedBy:  m.UploadedBy,
		Downloads:   m.Downloads,
		CreatedAt:   m.CreatedAt,
	}
}

func ToNoteResponseList(ms []model.NoteModel) []NoteResponse {
	out := make([]NoteResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToNoteResponse(m))
	}
	return out
}
