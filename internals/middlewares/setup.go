package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

func SetupMiddlewares(app *fiber.App) {
	app.Use(Recovery())
	app.Use(Cors())
	app.Use(GlobalRateLimiter())
}
