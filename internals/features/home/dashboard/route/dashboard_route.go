package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/home/dashboard/controller"
	"campushub_backend/internals/middlewares/auth"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)

	r := api.Group("/dashboard",
		auth.OnlyRoles(constants.RoleErrorAdmin("the admin dashboard"), constants.RoleAdmin))

	r.Get("/", ctrl.Overview)
	r.Get("/users", ctrl.Users)
	r.Put("/users/:id/activate", ctrl.SetUserActive)
}
