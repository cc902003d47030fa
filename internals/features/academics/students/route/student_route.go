package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/students/controller"
	"campushub_backend/internals/middlewares/auth"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	r := api.Group("/students")

	r.Post("/",
		auth.OnlyRoles(constants.RoleErrorAdmin("student management"), constants.RoleAdmin),
		ctrl.Create)
	r.Get("/",
		auth.OnlyRoles(constants.RoleErrorStaff("student listing"), constants.StaffRoles...),
		ctrl.List)
	r.Get("/:id", ctrl.Get)
	r.Put("/:id",
		auth.OnlyRoles(constants.RoleErrorAdmin("student management"), constants.RoleAdmin),
		ctrl.Update)
	r.Delete("/:id",
		auth.OnlyRoles(constants.RoleErrorAdmin("student management"), constants.RoleAdmin),
		ctrl.Delete)

	r.Get("/:id/academic-history", ctrl.AcademicHistory)
	r.Post("/:id/academic-history",
		auth.OnlyRoles(constants.RoleErrorAdmin("academic history"), constants.RoleAdmin),
		ctrl.AppendAcademicTerm)
	r.Put("/:id/subjects",
		auth.OnlyRoles(constants.RoleErrorAdmin("subject enrollment"), constants.RoleAdmin),
		ctrl.EnrollSubjects)
}
