package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/attendance/controller"
	"campushub_backend/internals/middlewares/auth"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	r := api.Group("/attendance")

	r.Post("/mark",
		auth.OnlyRoles(constants.RoleErrorStaff("mark attendance"), constants.RoleTeacher),
		ctrl.Mark)

	r.Get("/class",
		auth.OnlyRoles(constants.RoleErrorStaff("view class attendance"), constants.RoleTeacher, constants.RoleAdmin),
		ctrl.GetClassAttendance)

	r.Get("/analytics",
		auth.OnlyRoles(constants.RoleErrorStaff("view attendance analytics"), constants.RoleTeacher, constants.RoleAdmin),
		ctrl.Analytics)

	r.Get("/student/:studentId", ctrl.GetStudentAttendance)
	r.Get("/summary/:studentId", ctrl.GetSummary)

	r.Put("/:id",
		auth.OnlyRoles(constants.RoleErrorStaff("update attendance"), constants.RoleTeacher, constants.RoleAdmin),
		ctrl.Update)
}
