package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/academics/classes/dto"
	"campushub_backend/internals/features/academics/classes/model"
	studentmodel "campushub_backend/internals/features/academics/students/model"
	helper "campushub_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

// POST /api/classes (admin)
func (ctrl *ClassController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	class := req.ToModel()
	if err := ctrl.DB.Create(&class).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Class already exists for this department, semester, section and year")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class")
	}
	return helper.JsonCreated(c, "Class created", class)
}

// GET /api/classes
func (ctrl *ClassController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.ClassModel{})
	if v := c.Query("department"); v != "" {
		q = q.Where("department = ?", v)
	}
	if v := c.QueryInt("semester"); v > 0 {
		q = q.Where("semester = ?", v)
	}
	if v := c.Query("academic_year"); v != "" {
		q = q.Where("academic_year = ?", v)
	}

	var classes []model.ClassModel
	if err := q.Order("department ASC, semester ASC, section ASC").Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch classes")
	}
	return helper.JsonOK(c, "", classes)
}

// GET /api/classes/:id
func (ctrl *ClassController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var class model.ClassModel
	if err := ctrl.DB.First(&class, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	return helper.JsonOK(c, "", class)
}

// GET /api/classes/:id/students
//
// Class membership is derived from the student's (department, semester,
// section) tuple, not a join table.
func (ctrl *ClassController) Students(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var class model.ClassModel
	if err := ctrl.DB.First(&class, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	var students []studentmodel.StudentModel
	if err := ctrl.DB.Where(
		"department = ? AND semester = ? AND section = ? AND is_active = true",
		class.Department, class.Semester, class.Section,
	).Order("roll_number ASC").Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"class":    class,
		"students": students,
	})
}

// PUT /api/classes/:id (admin)
func (ctrl *ClassController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var req dto.UpdateClassRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var class model.ClassModel
	if err := ctrl.DB.First(&class, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	if req.Name != nil {
		class.Name = *req.Name
	}
	if req.ClassTeacherID != nil {
		class.ClassTeacherID = req.ClassTeacherID
	}
	if req.RoomNumber != nil {
		class.RoomNumber = req.RoomNumber
	}
	if req.IsActive != nil {
		class.IsActive = *req.IsActive
	}

	if err := ctrl.DB.Save(&class).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update class")
	}
	return helper.JsonUpdated(c, "Class updated", class)
}

// DELETE /api/classes/:id (admin)
func (ctrl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	res := ctrl.DB.Delete(&model.ClassModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete class")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	return helper.JsonDeleted(c, "Class deleted", fiber.Map{"id": id})
}

// POST /api/classes/sync-strength (admin)
//
// Recomputes each class's strength from the students table.
func (ctrl *ClassController) SyncStrength(c *fiber.Ctx) error {
	err := ctrl.DB.Exec(`
		UPDATE classes c SET strength = (
			SELECT COUNT(*) FROM students s
			WHERE s.department = c.department
			  AND s.semester = c.semester
			  AND s.section = c.section
			  AND s.is_active = true
			  AND s.deleted_at IS NULL
		)
		WHERE c.deleted_at IS NULL`).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sync class strength")
	}
	return helper.JsonUpdated(c, "Class strength synced", nil)
}
