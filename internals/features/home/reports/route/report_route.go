package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/home/reports/controller"
	"campushub_backend/internals/middlewares/auth"
)

func ReportRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	r := api.Group("/reports",
		auth.OnlyRoles(constants.RoleErrorAdmin("report exports"), constants.RoleAdmin))

	r.Get("/attendance", ctrl.AttendanceRegister)
	r.Get("/marks", ctrl.MarksSheet)
	r.Get("/fees", ctrl.FeeCollection)
}
