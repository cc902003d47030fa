package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/home/notifications/controller"
	"campushub_backend/internals/middlewares/auth"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	r := api.Group("/notifications")

	r.Get("/my", ctrl.My)
	r.Put("/read-all", ctrl.MarkAllRead)
	r.Put("/:id/read", ctrl.MarkRead)

	r.Post("/",
		auth.OnlyRoles(constants.RoleErrorAdmin("notification management"), constants.RoleAdmin),
		ctrl.Create)
	r.Post("/broadcast",
		auth.OnlyRoles(constants.RoleErrorAdmin("notification broadcast"), constants.RoleAdmin),
		ctrl.Broadcast)
}
