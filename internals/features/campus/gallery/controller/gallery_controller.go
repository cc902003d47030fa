package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/campus/gallery/dto"
	"campushub_backend/internals/features/campus/gallery/model"
	helper "campushub_backend/internals/helpers"
)

type GalleryController struct {
	DB *gorm.DB
}

func NewGalleryController(db *gorm.DB) *GalleryController {
	return &GalleryController{DB: db}
}

// POST /api/gallery (admin, multipart)
//
// The image field is required; it is converted to WebP before saving.
func (ctrl *GalleryController) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Image file is required")
	}
	title := c.FormValue("title")
	if title == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Title is required")
	}

	webpData, err := helper.ConvertToWebP(fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Unsupported or corrupt image")
	}
	imageURL, err := helper.SaveUpload("gallery", fileHeader.Filename, webpData)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store image")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var description *string
	if d := c.FormValue("description"); d != "" {
		description = &d
	}
	category := c.FormValue("category")
	if category == "" {
		category = "general"
	}

	item := model.GalleryModel{
		Title:       title,
		Description: description,
		Category:    category,
		ImageURL:    imageURL,
		UploadedBy:  userID,
		IsCarousel:  c.FormValue("is_carousel") == "true",
	}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save gallery item")
	}
	return helper.JsonCreated(c, "Image uploaded", dto.ToGalleryResponse(item))
}

// GET /api/gallery
func (ctrl *GalleryController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.GalleryModel{})
	if v := c.Query("category"); v != "" {
		q = q.Where("category = ?", v)
	}

	var items []model.GalleryModel
	if err := q.Order("sort_order ASC, created_at DESC").Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch gallery")
	}
	return helper.JsonOK(c, "", dto.ToGalleryResponseList(items))
}

// GET /api/gallery/categories
func (ctrl *GalleryController) Categories(c *fiber.Ctx) error {
	var categories []string
	if err := ctrl.DB.Model(&model.GalleryModel{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch categories")
	}
	return helper.JsonOK(c, "", fiber.Map{"categories": categories})
}

// GET /api/gallery/carousel (public)
func (ctrl *GalleryController) Carousel(c *fiber.Ctx) error {
	var items []model.GalleryModel
	if err := ctrl.DB.Where("is_carousel = true").
		Order("sort_order ASC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch carousel")
	}
	return helper.JsonOK(c, "", dto.ToGalleryResponseList(items))
}

// PUT /api/gallery/reorder (admin)
func (ctrl *GalleryController) Reorder(c *fiber.Ctx) error {
	var req dto.ReorderRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Items {
			if err := tx.Model(&model.GalleryModel{}).
				Where("id = ?", item.ID).
				Update("sort_order", item.SortOrder).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reorder gallery")
	}
	return helper.JsonUpdated(c, "Gallery reordered", fiber.Map{"updated": len(req.Items)})
}

// PUT /api/gallery/:id (admin)
func (ctrl *GalleryController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid gallery id")
	}

	var req dto.UpdateGalleryRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var item model.GalleryModel
	if err := ctrl.DB.First(&item, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Gallery item not found")
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.IsCarousel != nil {
		item.IsCarousel = *req.IsCarousel
	}
	if err := ctrl.DB.Save(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update gallery item")
	}
	return helper.JsonUpdated(c, "Gallery item updated", dto.ToGalleryResponse(item))
}

// DELETE /api/gallery/:id (admin)
func (ctrl *GalleryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid gallery id")
	}

	res := ctrl.DB.Delete(&model.GalleryModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete gallery item")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Gallery item not found")
	}
	return helper.JsonDeleted(c, "Gallery item deleted", fiber.Map{"id": id})
}
