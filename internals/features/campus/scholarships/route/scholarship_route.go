package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/campus/scholarships/controller"
	"campushub_backend/internals/middlewares/auth"
)

func ScholarshipRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewScholarshipController(db)

	r := api.Group("/scholarships")

	r.Post("/",
		auth.OnlyRoles(constants.RoleErrorAdmin("scholarship management"), constants.RoleAdmin),
		ctrl.Create)
	r.Get("/", ctrl.List)

	r.Get("/applications/my",
		auth.OnlyRoles("Only students may view their applications.", constants.RoleStudent),
		ctrl.MyApplications)
	r.Put("/applications/:applicationId/review",
		auth.OnlyRoles(constants.RoleErrorAdmin("application review"), constants.RoleAdmin),
		ctrl.ReviewApplication)

	r.Put("/:id",
		auth.OnlyRoles(constants.RoleErrorAdmin("scholarship management"), constants.RoleAdmin),
		ctrl.Update)
	r.Post("/:id/apply",
		auth.OnlyRoles("Only students may apply for scholarships.", constants.RoleStudent),
		ctrl.Apply)
	r.Get("/:id/applications",
		auth.OnlyRoles(constants.RoleErrorAdmin("scholarship applications"), constants.RoleAdmin),
		ctrl.Applications)
}
