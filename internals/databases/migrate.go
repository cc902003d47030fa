package database

import (
	"log"

	assignmentmodel "campushub_backend/internals/features/academics/assignments/model"
	attendancemodel "campushub_backend/internals/features/academics/attendance/model"
	classmodel "campushub_backend/internals/features/academics/classes/model"
	marksmodel "campushub_backend/internals/features/academics/marks/model"
	parentmodel "campushub_backend/internals/features/academics/parents/model"
	studentmodel "campushub_backend/internals/features/academics/students/model"
	subjectmodel "campushub_backend/internals/features/academics/subjects/model"
	teachermodel "campushub_backend/internals/features/academics/teachers/model"
	gallerymodel "campushub_backend/internals/features/campus/gallery/model"
	leavemodel "campushub_backend/internals/features/campus/leaves/model"
	notemodel "campushub_backend/internals/features/campus/notes/model"
	scholarshipmodel "campushub_backend/internals/features/campus/scholarships/model"
	feemodel "campushub_backend/internals/features/finance/fees/model"
	notifmodel "campushub_backend/internals/features/home/notifications/model"
	authmodel "campushub_backend/internals/features/users/auth/model"
)

// Migrate runs the schema migration for every registered model. Order
// matters for the foreign-key references.
func Migrate() {
	err := DB.AutoMigrate(
		&authmodel.UserModel{},
		&authmodel.TokenBlacklist{},
		&subjectmodel.SubjectModel{},
		&parentmodel.ParentModel{},
		&studentmodel.StudentModel{},
		&teachermodel.TeacherModel{},
		&classmodel.ClassModel{},
		&assignmentmodel.TeachingAssignmentModel{},
		&attendancemodel.AttendanceModel{},
		&marksmodel.MarksModel{},
		&marksmodel.BacklogModel{},
		&marksmodel.BacklogAttempt{},
		&feemodel.FeeStructureModel{},
		&feemodel.FeeModel{},
		&feemodel.PaymentModel{},
		&leavemodel.LeaveModel{},
		&scholarshipmodel.ScholarshipModel{},
		&scholarshipmodel.ScholarshipApplication{},
		&notemodel.NoteModel{},
		&gallerymodel.GalleryModel{},
		&notifmodel.NotificationModel{},
	)
	if err != nil {
		log.Fatalf("[ERROR] schema migration failed: %v", err)
	}
	log.Println("[INFO] schema migration complete")
}
