package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/teachers/controller"
	"campushub_backend/internals/middlewares/auth"
)

func TeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherController(db)

	r := api.Group("/teachers")

	r.Post("/",
		auth.OnlyRoles(constants.RoleErrorAdmin("teacher management"), constants.RoleAdmin),
		ctrl.Create)
	r.Get("/",
		auth.OnlyRoles(constants.RoleErrorAdmin("teacher listing"), constants.RoleAdmin),
		ctrl.List)
	r.Get("/by-department/:department", ctrl.ByDepartment)
	r.Get("/:id", ctrl.Get)
	r.Put("/:id",
		auth.OnlyRoles(constants.RoleErrorAdmin("teacher management"), constants.RoleAdmin),
		ctrl.Update)
	r.Delete("/:id",
		auth.OnlyRoles(constants.RoleErrorAdmin("teacher management"), constants.RoleAdmin),
		ctrl.Delete)
	r.Put("/:id/subjects",
		auth.OnlyRoles(constants.RoleErrorAdmin("subject assignment"), constants.RoleAdmin),
		ctrl.AssignSubjects)
}
