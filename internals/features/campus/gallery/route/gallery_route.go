package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/campus/gallery/controller"
	"campushub_backend/internals/middlewares/auth"
)

func GalleryRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGalleryController(db)

	r := api.Group("/gallery")

	r.Get("/", ctrl.List)
	r.Get("/carousel", ctrl.Carousel)
	r.Get("/categories", ctrl.Categories)

	r.Post("/",
		auth.OnlyRoles(constants.RoleErrorAdmin("gallery management"), constants.RoleAdmin),
		ctrl.Upload)
	r.Put("/reorder",
		auth.OnlyRoles(constants.RoleErrorAdmin("gallery management"), constants.RoleAdmin),
		ctrl.Reorder)
	r.Put("/:id",
		auth.OnlyRoles(constants.RoleErrorAdmin("gallery management"), constants.RoleAdmin),
		ctrl.Update)
	r.Delete("/:id",
		auth.OnlyRoles(constants.RoleErrorAdmin("gallery management"), constants.RoleAdmin),
		ctrl.Delete)
}
