package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	attendancemodel "campushub_backend/internals/features/academics/attendance/model"
	attendanceservice "campushub_backend/internals/features/academics/attendance/service"
	marksmodel "campushub_backend/internals/features/academics/marks/model"
	studentmodel "campushub_backend/internals/features/academics/students/model"
	teachermodel "campushub_backend/internals/features/academics/teachers/model"
	leavemodel "campushub_backend/internals/features/campus/leaves/model"
	feemodel "campushub_backend/internals/features/finance/fees/model"
	usermodel "campushub_backend/internals/features/users/auth/model"
	helper "campushub_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/dashboard (admin)
//
// Single aggregate view for the admin home screen.
func (ctrl *DashboardController) Overview(c *fiber.Ctx) error {
	var totalStudents, totalTeachers, pendingLeaves, openBacklogs int64
	ctrl.DB.Model(&studentmodel.StudentModel{}).Where("is_active = true").Count(&totalStudents)
	ctrl.DB.Model(&teachermodel.TeacherModel{}).Where("is_active = true").Count(&totalTeachers)
	ctrl.DB.Model(&leavemodel.LeaveModel{}).Where("status = ?", leavemodel.LeavePending).Count(&pendingLeaves)
	ctrl.DB.Model(&marksmodel.BacklogModel{}).Where("status <> ?", marksmodel.BacklogCleared).Count(&openBacklogs)

	type feeRow struct {
		Total     decimal.Decimal `json:"total"`
		Collected decimal.Decimal `json:"collected"`
		Due       decimal.Decimal `json:"due"`
	}
	var fees feeRow
	ctrl.DB.Model(&feemodel.FeeModel{}).
		Select(`COALESCE(SUM(total_amount), 0) AS total,
			COALESCE(SUM(paid_amount), 0) AS collected,
			COALESCE(SUM(due_amount), 0) AS due`).
		Scan(&fees)

	// today's attendance across the college
	type todayRow struct {
		Total   int
		Present int
	}
	var today todayRow
	ctrl.DB.Model(&attendancemodel.AttendanceModel{}).
		Where("date = ?", time.Now().Format("2006-01-02")).
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status IN ('Present','Late')) AS present`).
		Scan(&today)

	type deptRow struct {
		Department string `json:"department"`
		Students   int    `json:"students"`
	}
	var byDept []deptRow
	ctrl.DB.Model(&studentmodel.StudentModel{}).
		Where("is_active = true").
		Select("department, COUNT(*) AS students").
		Group("department").
		Scan(&byDept)

	return helper.JsonOK(c, "", fiber.Map{
		"totals": fiber.Map{
			"students":       totalStudents,
			"teachers":       totalTeachers,
			"pending_leaves": pendingLeaves,
			"open_backlogs":  openBacklogs,
		},
		"fees": fees,
		"today_attendance": fiber.Map{
			"total":      today.Total,
			"present":    today.Present,
			"percentage": attendanceservice.Percentage(today.Present, today.Total),
		},
		"students_by_department": byDept,
	})
}

// GET /api/dashboard/users (admin)
func (ctrl *DashboardController) Users(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&usermodel.UserModel{})
	if v := c.Query("role"); v != "" {
		q = q.Where("role = ?", v)
	}
	if v := c.Query("search"); v != "" {
		q = q.Where("email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
			"%"+v+"%", "%"+v+"%", "%"+v+"%")
	}
	if v := c.Query("active"); v != "" {
		q = q.Where("is_active = ?", v == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []usermodel.UserModel
	if err := q.Order(p.SortBy + " " + p.SortOrder).
		Offset(p.Offset()).Limit(p.Limit()).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}
	return helper.JsonList(c, "", users, helper.BuildMeta(total, p))
}

// PUT /api/dashboard/users/:id/activate (admin)
func (ctrl *DashboardController) SetUserActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var body struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	res := ctrl.DB.Model(&usermodel.UserModel{}).
		Where("id = ?", id).
		Update("is_active", body.IsActive)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	msg := "User deactivated"
	if body.IsActive {
		msg = "User activated"
	}
	return helper.JsonUpdated(c, msg, fiber.Map{"id": id, "is_active": body.IsActive})
}
