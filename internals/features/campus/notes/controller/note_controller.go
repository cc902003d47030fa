package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/campus/notes/dto"
	"campushub_backend/internals/features/campus/notes/model"
	helper "campushub_backend/internals/helpers"
)

type NoteController struct {
	DB *gorm.DB
}

func NewNoteController(db *gorm.DB) *NoteController {
	return &NoteController{DB: db}
}

// POST /api/notes (teacher, admin)
func (ctrl *NoteController) Create(c *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	note := model.NoteModel{
		Title:       req.Title,
		Description: req.Description,
		SubjectID:   req.SubjectID,
		Semester:    req.Semester,
		Department:  req.Department,
		Tags:        req.Tags,
		File:        req.File,
		UploadedBy:  userID,
	}
	if err := ctrl.DB.Create(&note).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload note")
	}
	return helper.JsonCreated(c, "Note uploaded", dto.ToNoteResponse(note))
}

// GET /api/notes
func (ctrl *NoteController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.NoteModel{})
	if v := c.Query("department"); v != "" {
		q = q.Where("department = ?", v)
	}
	if v := c.QueryInt("semester"); v > 0 {
		q = q.Where("semester = ?", v)
	}
	if v := c.Query("subject_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("subject_id = ?", id)
		}
	}
	if v := c.Query("tag"); v != "" {
		q = q.Where("? = ANY(tags)", v)
	}
	if v := c.Query("search"); v != "" {
		q = q.Where("title ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notes")
	}

	var notes []model.NoteModel
	if err := q.Order(p.SortBy + " " + p.SortOrder).
		Offset(p.Offset()).Limit(p.Limit()).
		Find(&notes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notes")
	}
	return helper.JsonList(c, "", dto.ToNoteResponseList(notes), helper.BuildMeta(total, p))
}

// GET /api/notes/my (teacher, admin)
func (ctrl *NoteController) My(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var notes []model.NoteModel
	if err := ctrl.DB.Where("uploaded_by = ?", userID).
		Order("created_at DESC").
		Find(&notes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notes")
	}
	return helper.JsonOK(c, "", dto.ToNoteResponseList(notes))
}

// GET /api/notes/:id
func (ctrl *NoteController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid note id")
	}

	var note model.NoteModel
	if err := ctrl.DB.First(&note, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Note not found")
	}
	return helper.JsonOK(c, "", dto.ToNoteResponse(note))
}

// POST /api/notes/:id/download
//
// Bumps the download counter and returns the file metadata. The counter
// update is atomic so concurrent downloads never lose counts.
func (ctrl *NoteController) Download(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid note id")
	}

	var note model.NoteModel
	if err := ctrl.DB.First(&note, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Note not found")
	}

	if err := ctrl.DB.Model(&note).
		UpdateColumn("downloads", gorm.Expr("downloads + 1")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record download")
	}
	note.Downloads++

	return helper.JsonOK(c, "", fiber.Map{
		"file":      note.File,
		"downloads": note.Downloads,
	})
}

// PUT /api/notes/:id (uploader or admin)
func (ctrl *NoteController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid note id")
	}

	var req dto.UpdateNoteRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var note model.NoteModel
	if err := ctrl.DB.First(&note, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Note not found")
	}
	if err := ctrl.requireOwnership(c, note); err != nil {
		return err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Description != nil {
		note.Description = req.Description
	}
	if req.Tags != nil {
		note.Tags = *req.Tags
	}
	if err := ctrl.DB.Save(&note).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update note")
	}
	return helper.JsonUpdated(c, "Note updated", dto.ToNoteResponse(note))
}

// DELETE /api/notes/:id (uploader or admin)
func (ctrl *NoteController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid note id")
	}

	var note model.NoteModel
	if err := ctrl.DB.First(&note, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Note not found")
	}
	if err := ctrl.requireOwnership(c, note); err != nil {
		return err
	}

	if err := ctrl.DB.Delete(&note).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete note")
	}
	return helper.JsonDeleted(c, "Note deleted", fiber.Map{"id": id})
}

func (ctrl *NoteController) requireOwnership(c *fiber.Ctx, note model.NoteModel) error {
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}
	if role == constants.RoleAdmin {
		return nil
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if note.UploadedBy != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the uploader may modify this note")
	}
	return nil
}
