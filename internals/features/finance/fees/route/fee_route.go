package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/finance/fees/controller"
	"campushub_backend/internals/middlewares/auth"
)

func FeeRoutes(api fiber.Router, db *gorm.DB) {
	structures := controller.NewFeeStructureController(db)
	fees := controller.NewFeeController(db)

	r := api.Group("/fees")

	r.Post("/structures",
		auth.OnlyRoles(constants.RoleErrorAdmin("fee structures"), constants.RoleAdmin),
		structures.Create)
	r.Get("/structures", structures.List)
	r.Put("/structures/:id",
		auth.OnlyRoles(constants.RoleErrorAdmin("fee structures"), constants.RoleAdmin),
		structures.Update)
	r.Delete("/structures/:id",
		auth.OnlyRoles(constants.RoleErrorAdmin("fee structures"), constants.RoleAdmin),
		structures.Delete)

	r.Post("/assign",
		auth.OnlyRoles(constants.RoleErrorAdmin("fee assignment"), constants.RoleAdmin),
		fees.Assign)
	r.Post("/assign/bulk",
		auth.OnlyRoles(constants.RoleErrorAdmin("fee assignment"), constants.RoleAdmin),
		fees.BulkAssign)

	r.Get("/overdue",
		auth.OnlyRoles(constants.RoleErrorAdmin("overdue fees"), constants.RoleAdmin),
		fees.Overdue)
	r.Get("/analytics",
		auth.OnlyRoles(constants.RoleErrorAdmin("fee analytics"), constants.RoleAdmin),
		fees.Analytics)

	r.Post("/payments",
		auth.OnlyRoles(constants.RoleErrorAdmin("payment collection"), constants.RoleAdmin),
		fees.RecordPayment)
	r.Post("/payments/checkout", fees.Checkout)
	r.Get("/payments/history/:studentId", fees.PaymentHistory)

	r.Get("/student/:studentId", fees.GetStudentFees)
}

// GatewayWebhookRoute is registered outside the authenticated group; the
// auth middleware also skips this path so the gateway can reach it.
func GatewayWebhookRoute(api fiber.Router, db *gorm.DB) {
	fees := controller.NewFeeController(db)
	api.Post("/fees/payments/notification", fees.GatewayNotification)
}
