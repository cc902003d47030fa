package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/subjects/controller"
	"campushub_backend/internals/middlewares/auth"
)

func SubjectRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSubjectController(db)

	r := api.Group("/subjects")

	r.Post("/",
		auth.OnlyRoles(constants.RoleErrorAdmin("subject management"), constants.RoleAdmin),
		ctrl.Create)
	r.Get("/", ctrl.List)
	r.Get("/:id", ctrl.Get)
	r.Put("/:id",
		auth.OnlyRoles(constants.RoleErrorAdmin("subject management"), constants.RoleAdmin),
		ctrl.Update)
	r.Delete("/:id",
		auth.OnlyRoles(constants.RoleErrorAdmin("subject management"), constants.RoleAdmin),
		ctrl.Delete)
}
