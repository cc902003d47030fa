package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"campushub_backend/internals/features/academics/attendance/model"
	attendanceservice "campushub_backend/internals/features/academics/attendance/service"
	marksmodel "campushub_backend/internals/features/academics/marks/model"
	parentmodel "campushub_backend/internals/features/academics/parents/model"
	studentmodel "campushub_backend/internals/features/academics/students/model"
	leavemodel "campushub_backend/internals/features/campus/leaves/model"
	feemodel "campushub_backend/internals/features/finance/fees/model"
	helper "campushub_backend/internals/helpers"
)

// WardController serves the parent-facing view of their wards. Every
// endpoint verifies the requested student is actually linked to the
// authenticated parent.
type WardController struct {
	DB *gorm.DB
}

func NewWardController(db *gorm.DB) *WardController {
	return &WardController{DB: db}
}

func (ctrl *WardController) resolveWard(c *fiber.Ctx) (*studentmodel.StudentModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	var parent parentmodel.ParentModel
	if err := ctrl.DB.First(&parent, "user_id = ?", userID).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Parent profile not found")
	}

	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	var student studentmodel.StudentModel
	if err := ctrl.DB.First(&student, "id = ? AND parent_guardian_id = ?", studentID, parent.ID).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "Student is not linked to your account")
	}
	return &student, nil
}

// GET /api/parents/wards (parent)
func (ctrl *WardController) Wards(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var parent parentmodel.ParentModel
	if err := ctrl.DB.First(&parent, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Parent profile not found")
	}

	var wards []studentmodel.StudentModel
	if err := ctrl.DB.Where("parent_guardian_id = ?", parent.ID).Find(&wards).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch wards")
	}
	return helper.JsonOK(c, "", wards)
}

// GET /api/parents/wards/:studentId/dashboard (parent)
//
// One-call summary: attendance percentage, fee balance, open backlogs and
// pending leaves for the ward.
func (ctrl *WardController) Dashboard(c *fiber.Ctx) error {
	student, err := ctrl.resolveWard(c)
	if err != nil {
		return err
	}

	var records []model.AttendanceModel
	ctrl.DB.Where("student_id = ?", student.ID).Find(&records)
	attendance := attendanceservice.Summarize(records)

	type feeRow struct {
		Total decimal.Decimal `json:"total"`
		Paid  decimal.Decimal `json:"paid"`
		Due   decimal.Decimal `json:"due"`
	}
	var fees feeRow
	ctrl.DB.Model(&feemodel.FeeModel{}).
		Where("student_id = ?", student.ID).
		Select(`COALESCE(SUM(total_amount), 0) AS total,
			COALESCE(SUM(paid_amount), 0) AS paid,
			COALESCE(SUM(due_amount), 0) AS due`).
		Scan(&fees)

	var openBacklogs int64
	ctrl.DB.Model(&marksmodel.BacklogModel{}).
		Where("student_id = ? AND status <> ?", student.ID, marksmodel.BacklogCleared).
		Count(&openBacklogs)

	var pendingLeaves int64
	ctrl.DB.Model(&leavemodel.LeaveModel{}).
		Where("applicant_id = ? AND status = ?", student.UserID, leavemodel.LeavePending).
		Count(&pendingLeaves)

	return helper.JsonOK(c, "", fiber.Map{
		"student":        student,
		"attendance":     attendance,
		"fees":           fees,
		"open_backlogs":  openBacklogs,
		"pending_leaves": pendingLeaves,
	})
}

// GET /api/parents/wards/:studentId/attendance (parent)
func (ctrl *WardController) Attendance(c *fiber.Ctx) error {
	student, err := ctrl.resolveWard(c)
	if err != nil {
		return err
	}

	var records []model.AttendanceModel
	if err := ctrl.DB.Where("student_id = ?", student.ID).
		Order("date DESC").Limit(200).
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"records": records,
		"summary": attendanceservice.Summarize(records),
	})
}

// GET /api/parents/wards/:studentId/marks (parent)
func (ctrl *WardController) Marks(c *fiber.Ctx) error {
	student, err := ctrl.resolveWard(c)
	if err != nil {
		return err
	}

	var marks []marksmodel.MarksModel
	if err := ctrl.DB.Preload("Subject").
		Where("student_id = ?", student.ID).
		Order("created_at DESC").
		Find(&marks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch marks")
	}
	return helper.JsonOK(c, "", marks)
}

// GET /api/parents/wards/:studentId/fees (parent)
func (ctrl *WardController) Fees(c *fiber.Ctx) error {
	student, err := ctrl.resolveWard(c)
	if err != nil {
		return err
	}

	var fees []feemodel.FeeModel
	if err := ctrl.DB.Preload("Payments").
		Where("student_id = ?", student.ID).
		Order("academic_year DESC, semester DESC").
		Find(&fees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fees")
	}
	return helper.JsonOK(c, "", fees)
}

// GET /api/parents/wards/:studentId/leaves (parent)
func (ctrl *WardController) Leaves(c *fiber.Ctx) error {
	student, err := ctrl.resolveWard(c)
	if err != nil {
		return err
	}

	var leaves []leavemodel.LeaveModel
	if err := ctrl.DB.Where("applicant_id = ?", student.UserID).
		Order("created_at DESC").
		Find(&leaves).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch leaves")
	}
	return helper.JsonOK(c, "", leaves)
}
