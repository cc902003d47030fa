package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/campus/notes/controller"
	"campushub_backend/internals/middlewares/auth"
)

func NoteRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNoteController(db)

	r := api.Group("/notes")

	r.Post("/",
		auth.OnlyRoles(constants.RoleErrorStaff("note upload"), constants.StaffRoles...),
		ctrl.Create)
	r.Get("/", ctrl.List)
	r.Get("/my",
		auth.OnlyRoles(constants.RoleErrorStaff("note management"), constants.StaffRoles...),
		ctrl.My)
	r.Get("/:id", ctrl.Get)
	r.Post("/:id/download", ctrl.Download)
	r.Put("/:id",
		auth.OnlyRoles(constants.RoleErrorStaff("note management"), constants.StaffRoles...),
		ctrl.Update)
	r.Delete("/:id",
		auth.OnlyRoles(constants.RoleErrorStaff("note management"), constants.StaffRoles...),
		ctrl.Delete)
}
