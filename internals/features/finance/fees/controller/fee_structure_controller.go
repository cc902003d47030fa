package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/finance/fees/dto"
	"campushub_backend/internals/features/finance/fees/model"
	helper "campushub_backend/internals/helpers"
)

type FeeStructureController struct {
	DB *gorm.DB
}

func NewFeeStructureController(db *gorm.DB) *FeeStructureController {
	return &FeeStructureController{DB: db}
}

// POST /api/fees/structures (admin)
func (ctrl *FeeStructureController) Create(c *fiber.Ctx) error {
	var req dto.CreateFeeStructureRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}
	if !req.TotalAmount.IsPositive() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Total amount must be positive")
	}
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid due date")
	}

	structure := model.FeeStructureModel{
		Department:   req.Department,
		Course:       req.Course,
		Semester:     req.Semester,
		AcademicYear: req.AcademicYear,
		Components:   req.Components,
		TotalAmount:  req.TotalAmount,
		DueDate:      dueDate,
		IsActive:     true,
	}
	if err := ctrl.DB.Create(&structure).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Fee structure already exists for this department, course, semester and year")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create fee structure")
	}
	return helper.JsonCreated(c, "Fee structure created", dto.ToFeeStructureResponse(structure))
}

// GET /api/fees/structures
func (ctrl *FeeStructureController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.FeeStructureModel{})
	if v := c.Query("department"); v != "" {
		q = q.Where("department = ?", v)
	}
	if v := c.QueryInt("semester"); v > 0 {
		q = q.Where("semester = ?", v)
	}
	if v := c.Query("academic_year"); v != "" {
		q = q.Where("academic_year = ?", v)
	}

	var structures []model.FeeStructureModel
	if err := q.Order("created_at DESC").Find(&structures).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fee structures")
	}
	return helper.JsonOK(c, "", dto.ToFeeStructureResponseList(structures))
}

// PUT /api/fees/structures/:id (admin)
func (ctrl *FeeStructureController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee structure id")
	}

	var req dto.UpdateFeeStructureRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var structure model.FeeStructureModel
	if err := ctrl.DB.First(&structure, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Fee structure not found")
	}

	if req.Components != nil {
		structure.Components = *req.Components
	}
	if req.TotalAmount != nil {
		if !req.TotalAmount.IsPositive() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Total amount must be positive")
		}
		structure.TotalAmount = *req.TotalAmount
	}
	if req.DueDate != nil {
		d, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid due date")
		}
		structure.DueDate = d
	}
	if req.IsActive != nil {
		structure.IsActive = *req.IsActive
	}

	if err := ctrl.DB.Save(&structure).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update fee structure")
	}
	return helper.JsonUpdated(c, "Fee structure updated", dto.ToFeeStructureResponse(structure))
}

// DELETE /api/fees/structures/:id (admin)
func (ctrl *FeeStructureController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee structure id")
	}

	var assigned int64
	if err := ctrl.DB.Model(&model.FeeModel{}).Where("fee_structure_id = ?", id).Count(&assigned).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check assignments")
	}
	if assigned > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Fee structure has assigned fees and cannot be deleted")
	}

	res := ctrl.DB.Delete(&model.FeeStructureModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete fee structure")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Fee structure not found")
	}
	return helper.JsonDeleted(c, "Fee structure deleted", fiber.Map{"id": id})
}
