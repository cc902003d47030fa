package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/academics/assignments/dto"
	"campushub_backend/internals/features/academics/assignments/model"
	studentmodel "campushub_backend/internals/features/academics/students/model"
	teachermodel "campushub_backend/internals/features/academics/teachers/model"
	helper "campushub_backend/internals/helpers"
)

type AssignmentController struct {
	DB *gorm.DB
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db}
}

// POST /api/assignments (admin)
func (ctrl *AssignmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateAssignmentRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}
	if req.AcademicYear == "" {
		req.AcademicYear = helper.CurrentAcademicYear()
	}

	assignment := req.ToModel()
	if err := ctrl.DB.Create(&assignment).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Assignment already exists for this teacher, class and subject")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create assignment")
	}
	return helper.JsonCreated(c, "Teaching assignment created", assignment)
}

// GET /api/assignments (admin)
func (ctrl *AssignmentController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Preload("Teacher").Preload("Class").Preload("Subject").
		Model(&model.TeachingAssignmentModel{})
	if v := c.Query("teacher_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("teacher_id = ?", id)
		}
	}
	if v := c.Query("class_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("class_id = ?", id)
		}
	}
	if v := c.Query("academic_year"); v != "" {
		q = q.Where("academic_year = ?", v)
	}

	var assignments []model.TeachingAssignmentModel
	if err := q.Order("created_at DESC").Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
	}
	return helper.JsonOK(c, "", assignments)
}

// GET /api/assignments/my (teacher)
func (ctrl *AssignmentController) My(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var teacher teachermodel.TeacherModel
	if err := ctrl.DB.First(&teacher, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher profile not found")
	}

	q := ctrl.DB.Preload("Class").Preload("Subject").
		Where("teacher_id = ? AND is_active = true", teacher.ID)
	if v := c.Query("academic_year"); v != "" {
		q = q.Where("academic_year = ?", v)
	}

	var assignments []model.TeachingAssignmentModel
	if err := q.Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
	}
	return helper.JsonOK(c, "", assignments)
}

// GET /api/assignments/:id/students (teacher, admin)
func (ctrl *AssignmentController) Students(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	var assignment model.TeachingAssignmentModel
	if err := ctrl.DB.Preload("Class").Preload("Subject").
		First(&assignment, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}
	if assignment.Class == nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Assignment references a missing class")
	}

	var students []studentmodel.StudentModel
	if err := ctrl.DB.Where(
		"department = ? AND semester = ? AND section = ? AND is_active = true",
		assignment.Class.Department, assignment.Class.Semester, assignment.Class.Section,
	).Order("roll_number ASC").Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"assignment": assignment,
		"students":   students,
	})
}

// PUT /api/assignments/:id (admin)
func (ctrl *AssignmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	var req dto.UpdateAssignmentRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var assignment model.TeachingAssignmentModel
	if err := ctrl.DB.First(&assignment, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}

	if req.TeacherID != nil {
		assignment.TeacherID = *req.TeacherID
	}
	if req.IsActive != nil {
		assignment.IsActive = *req.IsActive
	}

	if err := ctrl.DB.Save(&assignment).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Assignment already exists for this teacher, class and subject")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update assignment")
	}
	return helper.JsonUpdated(c, "Assignment updated", assignment)
}

// DELETE /api/assignments/:id (admin)
func (ctrl *AssignmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	res := ctrl.DB.Delete(&model.TeachingAssignmentModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete assignment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}
	return helper.JsonDeleted(c, "Assignment deleted", fiber.Map{"id": id})
}
