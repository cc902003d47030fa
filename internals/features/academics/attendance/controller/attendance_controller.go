package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	assignmentmodel "campushub_backend/internals/features/academics/assignments/model"
	"campushub_backend/internals/features/academics/attendance/dto"
	"campushub_backend/internals/features/academics/attendance/model"
	"campushub_backend/internals/features/academics/attendance/service"
	studentmodel "campushub_backend/internals/features/academics/students/model"
	teachermodel "campushub_backend/internals/features/academics/teachers/model"
	notifmodel "campushub_backend/internals/features/home/notifications/model"
	notifier "campushub_backend/internals/features/home/notifications/service"
	usermodel "campushub_backend/internals/features/users/auth/model"
	helper "campushub_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// POST /api/attendance/mark (teacher)
//
// Bulk upsert keyed on (student, subject, date, lecture_number). Students that
// do not resolve or do not belong to the assignment's class are skipped, never
// aborting the batch. Absent students (and their linked parent) get a
// notification.
func (ctrl *AttendanceController) Mark(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}
	if req.LectureNumber == 0 {
		req.LectureNumber = 1
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date")
	}

	var assignment assignmentmodel.TeachingAssignmentModel
	if err := ctrl.DB.Preload("Class").Preload("Subject").
		First(&assignment, "id = ?", req.AssignmentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Teaching assignment not found")
	}
	if assignment.Class == nil || assignment.Subject == nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Assignment references missing class or subject")
	}

	teacher, err := ctrl.teacherFromToken(c)
	if err != nil {
		return err
	}
	if assignment.TeacherID != teacher.ID {
		return helper.JsonError(c, fiber.StatusForbidden, "You are not authorized to mark attendance for this class")
	}

	classInfo := assignment.Class
	marked := make([]model.AttendanceModel, 0, len(req.Entries))
	notifications := make([]notifmodel.NotificationModel, 0)

	for _, entry := range req.Entries {
		var student studentmodel.StudentModel
		if err := ctrl.DB.First(&student, "id = ?", entry.StudentID).Error; err != nil {
			continue // skip unknown students, keep the batch going
		}
		if student.Department != classInfo.Department ||
			student.Semester != classInfo.Semester ||
			student.Section != classInfo.Section {
			continue // not in this class
		}

		record := model.AttendanceModel{
			StudentID:            student.ID,
			SubjectID:            assignment.SubjectID,
			TeacherID:            teacher.ID,
			TeachingAssignmentID: &assignment.ID,
			Date:                 date,
			LectureNumber:        req.LectureNumber,
			Status:               model.AttendanceStatus(entry.Status),
			Remarks:              entry.Remarks,
			Semester:             classInfo.Semester,
			Department:           classInfo.Department,
			Section:              classInfo.Section,
		}
		if err := ctrl.DB.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "student_id"}, {Name: "subject_id"}, {Name: "date"}, {Name: "lecture_number"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"teacher_id", "teaching_assignment_id", "status", "remarks", "updated_at",
			}),
		}).Create(&record).Error; err != nil {
			log.Printf("[WARN] attendance upsert skipped (student=%s): %v", student.ID, err)
			continue
		}
		marked = append(marked, record)

		if record.Status == model.StatusAbsent {
			notifications = append(notifications, ctrl.absenceNotifications(student, assignment.Subject.Name, date)...)
		}
	}

	notifier.NotifyMany(ctrl.DB, notifications)

	return helper.JsonCreated(c,
		fmt.Sprintf("Attendance marked for %d students", len(marked)),
		dto.ToAttendanceResponseList(marked))
}

func (ctrl *AttendanceController) absenceNotifications(student studentmodel.StudentModel, subjectName string, date time.Time) []notifmodel.NotificationModel {
	out := make([]notifmodel.NotificationModel, 0, 2)

	out = append(out, notifmodel.NotificationModel{
		RecipientID:   student.UserID,
		RecipientRole: "student",
		Title:         "Attendance Marked Absent",
		Message:       fmt.Sprintf("You were marked absent for %s on %s", subjectName, date.Format("02/01/2006")),
		Type:          notifmodel.TypeAttendance,
	})

	if student.ParentGuardianID != nil {
		var parentUserID uuid.UUID
		err := ctrl.DB.Table("parents").
			Select("user_id").
			Where("id = ?", *student.ParentGuardianID).
			Scan(&parentUserID).Error
		if err == nil && parentUserID != uuid.Nil {
			out = append(out, notifmodel.NotificationModel{
				RecipientID:   parentUserID,
				RecipientRole: "parent",
				Title:         "Student Marked Absent",
				Message:       fmt.Sprintf("Your ward was marked absent for %s on %s", subjectName, date.Format("02/01/2006")),
				Type:          notifmodel.TypeAttendance,
			})
		}
	}
	return out
}

// GET /api/attendance/class (teacher, admin)
func (ctrl *AttendanceController) GetClassAttendance(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.AttendanceModel{})

	if v := c.Query("department"); v != "" {
		q = q.Where("department = ?", v)
	}
	if v := c.QueryInt("semester"); v > 0 {
		q = q.Where("semester = ?", v)
	}
	if v := c.Query("section"); v != "" {
		q = q.Where("section = ?", v)
	}
	if v := c.Query("subject_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("subject_id = ?", id)
		}
	}
	if v := c.Query("date"); v != "" {
		if d, err := time.Parse("2006-01-02", v); err == nil {
			q = q.Where("date = ?", d)
		}
	}

	var records []model.AttendanceModel
	if err := q.Order("date DESC, lecture_number ASC").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}
	return helper.JsonOK(c, "", dto.ToAttendanceResponseList(records))
}

// GET /api/attendance/student/:studentId
func (ctrl *AttendanceController) GetStudentAttendance(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	q := ctrl.DB.Where("student_id = ?", studentID)

	if v := c.Query("subject_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("subject_id = ?", id)
		}
	}
	if from, to := c.Query("start_date"), c.Query("end_date"); from != "" && to != "" {
		f, err1 := time.Parse("2006-01-02", from)
		t, err2 := time.Parse("2006-01-02", to)
		if err1 == nil && err2 == nil {
			q = q.Where("date BETWEEN ? AND ?", f, t)
		}
	} else if month := c.Query("month"); month != "" {
		if m, err := time.Parse("2006-01", month); err == nil {
			q = q.Where("date >= ? AND date < ?", m, m.AddDate(0, 1, 0))
		}
	}

	var records []model.AttendanceModel
	if err := q.Order("date DESC").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "ok",
		"data":    dto.ToAttendanceResponseList(records),
		"summary": service.Summarize(records),
	})
}

// GET /api/attendance/summary/:studentId
//
// Per-subject attendance summary plus the overall percentage.
func (ctrl *AttendanceController) GetSummary(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var exists int64
	if err := ctrl.DB.Model(&studentmodel.StudentModel{}).Where("id = ?", studentID).Count(&exists).Error; err != nil || exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	type subjectRow struct {
		SubjectID   uuid.UUID `json:"subject_id"`
		SubjectName string    `json:"subject_name"`
		SubjectCode string    `json:"subject_code"`
		Total       int       `json:"total"`
		Present     int       `json:"present"`
		Absent      int       `json:"absent"`
		Percentage  int       `json:"percentage"`
	}
	var rows []subjectRow
	err = ctrl.DB.Table("attendances a").
		Select(`a.subject_id,
			s.name AS subject_name,
			s.code AS subject_code,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE a.status IN ('Present','Late')) AS present,
			COUNT(*) FILTER (WHERE a.status = 'Absent') AS absent`).
		Joins("JOIN subjects s ON s.id = a.subject_id").
		Where("a.student_id = ?", studentID).
		Group("a.subject_id, s.name, s.code").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate attendance")
	}

	overallTotal, overallPresent := 0, 0
	for i := range rows {
		rows[i].Percentage = service.Percentage(rows[i].Present, rows[i].Total)
		overallTotal += rows[i].Total
		overallPresent += rows[i].Present
	}

	return helper.JsonOK(c, "", fiber.Map{
		"subjects": rows,
		"overall": fiber.Map{
			"total":      overallTotal,
			"present":    overallPresent,
			"percentage": service.Percentage(overallPresent, overallTotal),
		},
	})
}

// GET /api/attendance/analytics (admin, teacher)
func (ctrl *AttendanceController) Analytics(c *fiber.Ctx) error {
	base := ctrl.DB.Table("attendances")
	if v := c.Query("department"); v != "" {
		base = base.Where("department = ?", v)
	}
	if v := c.QueryInt("semester"); v > 0 {
		base = base.Where("semester = ?", v)
	}
	if month := c.Query("month"); month != "" {
		if m, err := time.Parse("2006-01", month); err == nil {
			base = base.Where("date >= ? AND date < ?", m, m.AddDate(0, 1, 0))
		}
	}

	type trendRow struct {
		Date       string `json:"date"`
		Total      int    `json:"total"`
		Present    int    `json:"present"`
		Percentage int    `json:"percentage"`
	}
	var daily []trendRow
	if err := base.Session(&gorm.Session{}).
		Select(`to_char(date, 'YYYY-MM-DD') AS date,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status IN ('Present','Late')) AS present`).
		Group("to_char(date, 'YYYY-MM-DD')").
		Order("date").
		Scan(&daily).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate daily trend")
	}
	for i := range daily {
		daily[i].Percentage = service.Percentage(daily[i].Present, daily[i].Total)
	}

	type deptRow struct {
		Department string `json:"department"`
		Total      int    `json:"total"`
		Present    int    `json:"present"`
		Percentage int    `json:"percentage"`
	}
	var byDept []deptRow
	if err := base.Session(&gorm.Session{}).
		Select(`department,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status IN ('Present','Late')) AS present`).
		Group("department").
		Scan(&byDept).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate department summary")
	}
	for i := range byDept {
		byDept[i].Percentage = service.Percentage(byDept[i].Present, byDept[i].Total)
	}

	return helper.JsonOK(c, "", fiber.Map{
		"daily_trend":     daily,
		"department_wise": byDept,
	})
}

// PUT /api/attendance/:id (teacher, admin)
func (ctrl *AttendanceController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attendance id")
	}

	var req dto.UpdateAttendanceRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var record model.AttendanceModel
	if err := ctrl.DB.First(&record, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Attendance record not found")
	}

	if req.Status != nil {
		record.Status = model.AttendanceStatus(*req.Status)
	}
	if req.Remarks != nil {
		record.Remarks = req.Remarks
	}
	if err := ctrl.DB.Save(&record).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update attendance")
	}
	return helper.JsonUpdated(c, "Attendance updated", dto.ToAttendanceResponse(record))
}

func (ctrl *AttendanceController) teacherFromToken(c *fiber.Ctx) (*teachermodel.TeacherModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	var user usermodel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	var teacher teachermodel.TeacherModel
	if err := ctrl.DB.First(&teacher, "user_id = ?", user.ID).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Teacher profile not found")
	}
	return &teacher, nil
}
