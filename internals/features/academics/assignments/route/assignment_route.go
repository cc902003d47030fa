package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/assignments/controller"
	"campushub_backend/internals/middlewares/auth"
)

func AssignmentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAssignmentController(db)

	r := api.Group("/assignments")

	r.Post("/",
		auth.OnlyRoles(constants.RoleErrorAdmin("teaching assignments"), constants.RoleAdmin),
		ctrl.Create)
	r.Get("/",
		auth.OnlyRoles(constants.RoleErrorAdmin("teaching assignments"), constants.RoleAdmin),
		ctrl.List)
	r.Get("/my",
		auth.OnlyRoles("Only teachers may view their assignments.", constants.RoleTeacher),
		ctrl.My)
	r.Get("/:id/students",
		auth.OnlyRoles(constants.RoleErrorStaff("assignment rosters"), constants.StaffRoles...),
		ctrl.Students)
	r.Put("/:id",
		auth.OnlyRoles(constants.RoleErrorAdmin("teaching assignments"), constants.RoleAdmin),
		ctrl.Update)
	r.Delete("/:id",
		auth.OnlyRoles(constants.RoleErrorAdmin("teaching assignments"), constants.RoleAdmin),
		ctrl.Delete)
}
