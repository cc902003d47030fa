package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/classes/controller"
	"campushub_backend/internals/middlewares/auth"
)

func ClassRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClassController(db)

	r := api.Group("/classes")

	r.Post("/",
		auth.OnlyRoles(constants.RoleErrorAdmin("class management"), constants.RoleAdmin),
		ctrl.Create)
	r.Get("/", ctrl.List)
	r.Post("/sync-strength",
		auth.OnlyRoles(constants.RoleErrorAdmin("class management"), constants.RoleAdmin),
		ctrl.SyncStrength)
	r.Get("/:id", ctrl.Get)
	r.Get("/:id/students",
		auth.OnlyRoles(constants.RoleErrorStaff("class rosters"), constants.StaffRoles...),
		ctrl.Students)
	r.Put("/:id",
		auth.OnlyRoles(constants.RoleErrorAdmin("class management"), constants.RoleAdmin),
		ctrl.Update)
	r.Delete("/:id",
		auth.OnlyRoles(constants.RoleErrorAdmin("class management"), constants.RoleAdmin),
		ctrl.Delete)
}
