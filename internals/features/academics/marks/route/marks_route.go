package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/marks/controller"
	"campushub_backend/internals/middlewares/auth"
)

func MarksRoutes(api fiber.Router, db *gorm.DB) {
	marks := controller.NewMarksController(db)
	backlogs := controller.NewBacklogController(db)

	r := api.Group("/marks")

	r.Post("/",
		auth.OnlyRoles(constants.RoleErrorStaff("enter marks"), constants.RoleTeacher),
		marks.EnterMarks)

	r.Get("/class",
		auth.OnlyRoles(constants.RoleErrorStaff("view class marks"), constants.RoleTeacher, constants.RoleAdmin),
		marks.GetClassMarks)

	r.Get("/analytics/performance",
		auth.OnlyRoles(constants.RoleErrorStaff("view performance analytics"), constants.RoleTeacher, constants.RoleAdmin),
		marks.PerformanceAnalytics)

	r.Get("/backlogs/analytics",
		auth.OnlyRoles(constants.RoleErrorAdmin("backlog analytics"), constants.RoleAdmin),
		backlogs.Analytics)

	r.Post("/backlogs/register", backlogs.RegisterExam)

	r.Put("/backlogs/attempts/:attemptId",
		auth.OnlyRoles(constants.RoleErrorStaff("grade backlog attempts"), constants.RoleTeacher, constants.RoleAdmin),
		backlogs.UpdateAttempt)

	r.Get("/backlogs/:studentId", backlogs.GetStudentBacklogs)
	r.Get("/student/:studentId", marks.GetStudentMarks)
}
