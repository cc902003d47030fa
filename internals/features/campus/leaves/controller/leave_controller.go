package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	studentmodel "campushub_backend/internals/features/academics/students/model"
	"campushub_backend/internals/features/campus/leaves/dto"
	"campushub_backend/internals/features/campus/leaves/model"
	"campushub_backend/internals/features/campus/leaves/service"
	notifier "campushub_backend/internals/features/home/notifications/service"
	helper "campushub_backend/internals/helpers"
)

type LeaveController struct {
	DB *gorm.DB
}

func NewLeaveController(db *gorm.DB) *LeaveController {
	return &LeaveController{DB: db}
}

// POST /api/leaves (student, teacher)
func (ctrl *LeaveController) Apply(c *fiber.Ctx) error {
	var req dto.ApplyLeaveRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid start date")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid end date")
	}
	if end.Before(start) {
		return helper.JsonError(c, fiber.StatusBadRequest, "End date cannot be before start date")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	leave := model.LeaveModel{
		ApplicantID:   userID,
		ApplicantRole: role,
		Type:          model.LeaveType(req.Type),
		StartDate:     start,
		EndDate:       end,
		Days:          service.DayCount(start, end),
		Reason:        req.Reason,
		Attachment:    req.Attachment,
		Status:        model.LeavePending,
	}
	if err := ctrl.DB.Create(&leave).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit leave application")
	}
	return helper.JsonCreated(c, "Leave application submitted", dto.ToLeaveResponse(leave))
}

// GET /api/leaves/my
func (ctrl *LeaveController) My(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Where("applicant_id = ?", userID)
	if v := c.Query("status"); v != "" {
		q = q.Where("status = ?", v)
	}

	var leaves []model.LeaveModel
	if err := q.Order("created_at DESC").Find(&leaves).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch leaves")
	}
	return helper.JsonOK(c, "", dto.ToLeaveResponseList(leaves))
}

// GET /api/leaves (admin)
func (ctrl *LeaveController) All(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.LeaveModel{})
	if v := c.Query("status"); v != "" {
		q = q.Where("status = ?", v)
	}
	if v := c.Query("role"); v != "" {
		q = q.Where("applicant_role = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count leaves")
	}

	var leaves []model.LeaveModel
	if err := q.Order(p.SortBy + " " + p.SortOrder).
		Offset(p.Offset()).Limit(p.Limit()).
		Find(&leaves).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch leaves")
	}
	return helper.JsonList(c, "", dto.ToLeaveResponseList(leaves), helper.BuildMeta(total, p))
}

// GET /api/leaves/pending (admin)
func (ctrl *LeaveController) Pending(c *fiber.Ctx) error {
	var leaves []model.LeaveModel
	if err := ctrl.DB.Where("status = ?", model.LeavePending).
		Order("created_at ASC").Find(&leaves).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch pending leaves")
	}
	return helper.JsonOK(c, "", dto.ToLeaveResponseList(leaves))
}

// PUT /api/leaves/:id/review (admin)
func (ctrl *LeaveController) Review(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid leave id")
	}

	var req dto.ReviewLeaveRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var leave model.LeaveModel
	if err := ctrl.DB.First(&leave, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Leave application not found")
	}

	if err := service.Review(&leave, model.LeaveStatus(req.Status)); err != nil {
		if errors.Is(err, service.ErrNotPending) {
			return helper.JsonError(c, fiber.StatusConflict, "Leave application has already been reviewed")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid review status")
	}

	reviewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	now := time.Now()
	leave.ReviewedBy = &reviewerID
	leave.ReviewedAt = &now
	leave.ReviewComments = req.Comments

	if err := ctrl.DB.Save(&leave).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to review leave")
	}

	// Student leaves also go to the linked parent.
	parentUserID := uuid.Nil
	if leave.ApplicantRole == constants.RoleStudent {
		parentUserID = ctrl.parentUserFor(leave.ApplicantID)
	}
	notifier.NotifyMany(ctrl.DB, service.ReviewNotifications(leave, parentUserID))

	return helper.JsonUpdated(c, "Leave reviewed", dto.ToLeaveResponse(leave))
}

// PUT /api/leaves/:id/cancel (applicant)
func (ctrl *LeaveController) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid leave id")
	}

	var leave model.LeaveModel
	if err := ctrl.DB.First(&leave, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Leave application not found")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	if err := service.Cancel(&leave, leave.ApplicantID == userID); err != nil {
		if errors.Is(err, service.ErrNotApplicant) {
			return helper.JsonError(c, fiber.StatusForbidden, "Only the applicant may cancel a leave")
		}
		return helper.JsonError(c, fiber.StatusConflict, "Only pending leaves can be cancelled")
	}

	if err := ctrl.DB.Save(&leave).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel leave")
	}
	return helper.JsonUpdated(c, "Leave cancelled", dto.ToLeaveResponse(leave))
}

// parentUserFor resolves the parent user linked to a student's user account.
// Returns uuid.Nil when the student has no linked parent.
func (ctrl *LeaveController) parentUserFor(studentUserID uuid.UUID) uuid.UUID {
	var student studentmodel.StudentModel
	if err := ctrl.DB.First(&student, "user_id = ?", studentUserID).Error; err != nil {
		return uuid.Nil
	}
	if student.ParentGuardianID == nil {
		return uuid.Nil
	}
	var parentUserID uuid.UUID
	if err := ctrl.DB.Table("parents").
		Select("user_id").
		Where("id = ?", *student.ParentGuardianID).
		Scan(&parentUserID).Error; err != nil {
		return uuid.Nil
	}
	return parentUserID
}

// GET /api/leaves/analytics (admin)
func (ctrl *LeaveController) Analytics(c *fiber.Ctx) error {
	type statusRow struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	var byStatus []statusRow
	if err := ctrl.DB.Table("leaves").
		Where("deleted_at IS NULL").
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate leaves")
	}

	type typeRow struct {
		Type  string `json:"type"`
		Days  int    `json:"days"`
		Count int    `json:"count"`
	}
	var byType []typeRow
	if err := ctrl.DB.Table("leaves").
		Where("deleted_at IS NULL AND status = 'Approved'").
		Select("type, COALESCE(SUM(days), 0) AS days, COUNT(*) AS count").
		Group("type").
		Scan(&byType).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate leave types")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"by_status": byStatus,
		"approved_by_type": byType,
	})
}
