package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/parents/controller"
	"campushub_backend/internals/middlewares/auth"
)

func ParentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewParentController(db)
	wards := controller.NewWardController(db)

	r := api.Group("/parents")

	parentOnly := auth.OnlyRoles("Only parents may access ward information.", constants.RoleParent)
	r.Get("/wards", parentOnly, wards.Wards)
	r.Get("/wards/:studentId/dashboard", parentOnly, wards.Dashboard)
	r.Get("/wards/:studentId/attendance", parentOnly, wards.Attendance)
	r.Get("/wards/:studentId/marks", parentOnly, wards.Marks)
	r.Get("/wards/:studentId/fees", parentOnly, wards.Fees)
	r.Get("/wards/:studentId/leaves", parentOnly, wards.Leaves)

	r.Post("/",
		auth.OnlyRoles(constants.RoleErrorAdmin("parent management"), constants.RoleAdmin),
		ctrl.Create)
	r.Get("/",
		auth.OnlyRoles(constants.RoleErrorAdmin("parent listing"), constants.RoleAdmin),
		ctrl.List)
	r.Get("/:id",
		auth.OnlyRoles(constants.RoleErrorAdmin("parent details"), constants.RoleAdmin),
		ctrl.Get)
	r.Put("/:id",
		auth.OnlyRoles(constants.RoleErrorAdmin("parent management"), constants.RoleAdmin),
		ctrl.Update)
	r.Put("/:id/link-student",
		auth.OnlyRoles(constants.RoleErrorAdmin("parent management"), constants.RoleAdmin),
		ctrl.LinkStudent)
}
