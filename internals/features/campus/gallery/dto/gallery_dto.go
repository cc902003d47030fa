package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/campus/gallery/model"
)

type UpdateGalleryRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	IsCarousel  *bool   `json:"is_carousel,omitempty"`
}

type ReorderRequest struct {
	Items []ReorderItem `json:"items" validate:"required,min=1,dive"`
}

type ReorderItem struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	SortOrder int       `json:"sort_order"`
}

type GalleryResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	UploadedBy  uuid.UUID `json:"uploaded_by"`
	IsCarousel  bool      `json:"is_carousel"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToGalleryResponse(m model.GalleryModel) GalleryResponse {
	return GalleryResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		UploadedBy:  m.UploadedBy,
		IsCarousel:  m.IsCarousel,
		SortOrder:   m.SortOrder,
		CreatedAt:   m.CreatedAt,
	}
}

func ToGalleryResponseList(ms []model.GalleryModel) []GalleryResponse {
	out := make([]GalleryResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToGalleryResponse(m))
	}
	return out
}
