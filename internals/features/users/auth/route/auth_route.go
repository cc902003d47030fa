package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/users/auth/controller"
	"campushub_backend/internals/middlewares"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	protected := auth.Group("", authMiddleware.AuthMiddleware(db))
	protected.Get("/me", ctrl.Me)
	protected.Put("/profile", ctrl.UpdateProfile)
	protected.Put("/password", ctrl.ChangePassword)
	protected.Post("/logout", ctrl.Logout)
}
