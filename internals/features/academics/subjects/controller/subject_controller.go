package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/academics/subjects/dto"
	"campushub_backend/internals/features/academics/subjects/model"
	helper "campushub_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

// POST /api/subjects (admin)
func (ctrl *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	subject := req.ToModel()
	if err := ctrl.DB.Create(&subject).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Subject code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subject")
	}
	return helper.JsonCreated(c, "Subject created", subject)
}

// GET /api/subjects
func (ctrl *SubjectController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.SubjectModel{})
	if v := c.Query("department"); v != "" {
		q = q.Where("department = ?", v)
	}
	if v := c.QueryInt("semester"); v > 0 {
		q = q.Where("semester = ?", v)
	}
	if c.Query("include_inactive") != "true" {
		q = q.Where("is_active = true")
	}

	var subjects []model.SubjectModel
	if err := q.Order("code ASC").Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subjects")
	}
	return helper.JsonOK(c, "", subjects)
}

// GET /api/subjects/:id
func (ctrl *SubjectController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}

	var subject model.SubjectModel
	if err := ctrl.DB.First(&subject, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}
	return helper.JsonOK(c, "", subject)
}

// PUT /api/subjects/:id (admin)
func (ctrl *SubjectController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}

	var req dto.UpdateSubjectRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var subject model.SubjectModel
	if err := ctrl.DB.First(&subject, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}

	if req.Name != nil {
		subject.Name = *req.Name
	}
	if req.Credits != nil {
		subject.Credits = *req.Credits
	}
	if req.Type != nil {
		subject.Type = *req.Type
	}
	if req.MaxMarks != nil {
		subject.MaxMarks = *req.MaxMarks
	}
	if req.Syllabus != nil {
		subject.Syllabus = req.Syllabus
	}
	if req.IsElective != nil {
		subject.IsElective = *req.IsElective
	}
	if req.IsActive != nil {
		subject.IsActive = *req.IsActive
	}

	if err := ctrl.DB.Save(&subject).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update subject")
	}
	return helper.JsonUpdated(c, "Subject updated", subject)
}

// DELETE /api/subjects/:id (admin)
func (ctrl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}

	res := ctrl.DB.Delete(&model.SubjectModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}
	return helper.JsonDeleted(c, "Subject deleted", fiber.Map{"id": id})
}
