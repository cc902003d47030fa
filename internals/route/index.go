package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentroute "campushub_backend/internals/features/academics/assignments/route"
	attendanceroute "campushub_backend/internals/features/academics/attendance/route"
	classroute "campushub_backend/internals/features/academics/classes/route"
	marksroute "campushub_backend/internals/features/academics/marks/route"
	parentroute "campushub_backend/internals/features/academics/parents/route"
	studentroute "campushub_backend/internals/features/academics/students/route"
	subjectroute "campushub_backend/internals/features/academics/subjects/route"
	teacherroute "campushub_backend/internals/features/academics/teachers/route"
	galleryroute "campushub_backend/internals/features/campus/gallery/route"
	leaveroute "campushub_backend/internals/features/campus/leaves/route"
	noteroute "campushub_backend/internals/features/campus/notes/route"
	scholarshiproute "campushub_backend/internals/features/campus/scholarships/route"
	feeroute "campushub_backend/internals/features/finance/fees/route"
	dashboardroute "campushub_backend/internals/features/home/dashboard/route"
	notificationroute "campushub_backend/internals/features/home/notifications/route"
	reportroute "campushub_backend/internals/features/home/reports/route"
	authroute "campushub_backend/internals/features/users/auth/route"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature under /api. Register/login and the
// payment gateway webhook are public; everything else sits behind the JWT
// middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	log.Println("[INFO] Setting up AuthRoutes...")
	authroute.AuthRoutes(api, db)

	log.Println("[INFO] Setting up gateway webhook...")
	feeroute.GatewayWebhookRoute(api, db)

	protected := api.Group("", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Setting up academics routes...")
	studentroute.StudentRoutes(protected, db)
	teacherroute.TeacherRoutes(protected, db)
	parentroute.ParentRoutes(protected, db)
	subjectroute.SubjectRoutes(protected, db)
	classroute.ClassRoutes(protected, db)
	assignmentroute.AssignmentRoutes(protected, db)
	attendanceroute.AttendanceRoutes(protected, db)
	marksroute.MarksRoutes(protected, db)

	log.Println("[INFO] Setting up finance routes...")
	feeroute.FeeRoutes(protected, db)

	log.Println("[INFO] Setting up campus routes...")
	leaveroute.LeaveRoutes(protected, db)
	scholarshiproute.ScholarshipRoutes(protected, db)
	noteroute.NoteRoutes(protected, db)
	galleryroute.GalleryRoutes(protected, db)

	log.Println("[INFO] Setting up home routes...")
	notificationroute.NotificationRoutes(protected, db)
	dashboardroute.DashboardRoutes(protected, db)
	reportroute.ReportRoutes(protected, db)
}
