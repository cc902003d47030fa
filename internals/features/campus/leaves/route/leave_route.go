package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/campus/leaves/controller"
	"campushub_backend/internals/middlewares/auth"
)

func LeaveRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLeaveController(db)

	r := api.Group("/leaves")

	r.Post("/",
		auth.OnlyRoles("Only students and teachers may apply for leave.", constants.ApplicantRoles...),
		ctrl.Apply)

	r.Get("/my", ctrl.My)

	r.Get("/pending",
		auth.OnlyRoles(constants.RoleErrorAdmin("pending leaves"), constants.RoleAdmin),
		ctrl.Pending)

	r.Get("/analytics",
		auth.OnlyRoles(constants.RoleErrorAdmin("leave analytics"), constants.RoleAdmin),
		ctrl.Analytics)

	r.Get("/",
		auth.OnlyRoles(constants.RoleErrorAdmin("all leaves"), constants.RoleAdmin),
		ctrl.All)

	r.Put("/:id/review",
		auth.OnlyRoles(constants.RoleErrorAdmin("leave review"), constants.RoleAdmin),
		ctrl.Review)

	r.Put("/:id/cancel", ctrl.Cancel)
}
