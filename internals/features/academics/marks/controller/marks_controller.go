package controller

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campushub_backend/internals/features/academics/marks/dto"
	"campushub_backend/internals/features/academics/marks/model"
	"campushub_backend/internals/features/academics/marks/service"
	studentmodel "campushub_backend/internals/features/academics/students/model"
	subjectmodel "campushub_backend/internals/features/academics/subjects/model"
	notifmodel "campushub_backend/internals/features/home/notifications/model"
	notifier "campushub_backend/internals/features/home/notifications/service"
	helper "campushub_backend/internals/helpers"
)

type MarksController struct {
	DB *gorm.DB
}

func NewMarksController(db *gorm.DB) *MarksController {
	return &MarksController{DB: db}
}

// POST /api/marks (teacher)
//
// Bulk entry for one subject and exam. Entries with marks above the maximum
// or an unknown student are skipped; a failing End-Term result opens a
// backlog for the student.
func (ctrl *MarksController) EnterMarks(c *fiber.Ctx) error {
	var req dto.EnterMarksRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}
	if req.AcademicYear == "" {
		req.AcademicYear = helper.CurrentAcademicYear()
	}

	var subject subjectmodel.SubjectModel
	if err := ctrl.DB.First(&subject, "id = ?", req.SubjectID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	examType := model.ExamType(req.ExamType)
	saved := make([]model.MarksModel, 0, len(req.Entries))
	skipped := make([]fiber.Map, 0)
	notifications := make([]notifmodel.NotificationModel, 0)

	for _, entry := range req.Entries {
		if entry.ObtainedMarks > req.MaxMarks {
			skipped = append(skipped, fiber.Map{
				"student_id": entry.StudentID,
				"reason":     "obtained marks exceed maximum",
			})
			continue
		}

		var student studentmodel.StudentModel
		if err := ctrl.DB.First(&student, "id = ?", entry.StudentID).Error; err != nil {
			skipped = append(skipped, fiber.Map{
				"student_id": entry.StudentID,
				"reason":     "student not found",
			})
			continue
		}

		pct := service.Percentage(entry.ObtainedMarks, req.MaxMarks)
		record := model.MarksModel{
			StudentID:     student.ID,
			SubjectID:     subject.ID,
			ExamType:      examType,
			AcademicYear:  req.AcademicYear,
			AttemptNumber: 1,
			ObtainedMarks: entry.ObtainedMarks,
			MaxMarks:      req.MaxMarks,
			Percentage:    pct,
			Grade:         service.ComputeGrade(pct),
			Passed:        service.IsPassing(pct),
			Semester:      req.Semester,
			EnteredBy:     userID,
			Remarks:       entry.Remarks,
		}
		if err := ctrl.DB.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "student_id"}, {Name: "subject_id"}, {Name: "exam_type"},
				{Name: "academic_year"}, {Name: "attempt_number"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"obtained_marks", "max_marks", "percentage", "grade", "passed",
				"entered_by", "remarks", "updated_at",
			}),
		}).Create(&record).Error; err != nil {
			log.Printf("[WARN] marks upsert skipped (student=%s): %v", student.ID, err)
			skipped = append(skipped, fiber.Map{"student_id": student.ID, "reason": "database error"})
			continue
		}
		saved = append(saved, record)

		if service.ShouldPromote(record) {
			if err := service.PromoteBacklog(ctrl.DB, record); err != nil {
				log.Printf("[WARN] backlog promotion failed (student=%s subject=%s): %v",
					student.ID, subject.ID, err)
			} else {
				notifications = append(notifications, notifmodel.NotificationModel{
					RecipientID:   student.UserID,
					RecipientRole: "student",
					Title:         "Backlog Registered",
					Message:       fmt.Sprintf("You have a backlog in %s (%s). Register for the re-exam.", subject.Name, req.AcademicYear),
					Type:          notifmodel.TypeMarks,
				})
			}
		}

		notifications = append(notifications, notifmodel.NotificationModel{
			RecipientID:   student.UserID,
			RecipientRole: "student",
			Title:         "Marks Published",
			Message: fmt.Sprintf("%s %s marks: %.1f/%.1f (%s)",
				subject.Name, req.ExamType, record.ObtainedMarks, record.MaxMarks, record.Grade),
			Type: notifmodel.TypeMarks,
		})
	}

	notifier.NotifyMany(ctrl.DB, notifications)

	return helper.JsonCreated(c,
		fmt.Sprintf("Marks entered for %d students", len(saved)),
		fiber.Map{
			"entered": dto.ToMarksResponseList(saved),
			"skipped": skipped,
		})
}

// GET /api/marks/student/:studentId
//
// Results grouped by exam type, with aggregate percentage.
func (ctrl *MarksController) GetStudentMarks(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	q := ctrl.DB.Preload("Subject").Where("student_id = ?", studentID)
	if v := c.Query("academic_year"); v != "" {
		q = q.Where("academic_year = ?", v)
	}
	if v := c.QueryInt("semester"); v > 0 {
		q = q.Where("semester = ?", v)
	}
	if v := c.Query("exam_type"); v != "" {
		q = q.Where("exam_type = ?", v)
	}

	var records []model.MarksModel
	if err := q.Order("created_at DESC").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch marks")
	}

	grouped := map[string][]dto.MarksResponse{}
	var totalObtained, totalMax float64
	for _, m := range records {
		grouped[string(m.ExamType)] = append(grouped[string(m.ExamType)], dto.ToMarksResponse(m))
		totalObtained += m.ObtainedMarks
		totalMax += m.MaxMarks
	}

	return helper.JsonOK(c, "", fiber.Map{
		"marks":              grouped,
		"overall_percentage": service.Percentage(totalObtained, totalMax),
		"total_records":      len(records),
	})
}

// GET /api/marks/class (teacher, admin)
func (ctrl *MarksController) GetClassMarks(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Query("subject_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "subject_id is required")
	}

	q := ctrl.DB.Preload("Student").Preload("Subject").Where("subject_id = ?", subjectID)
	if v := c.Query("exam_type"); v != "" {
		q = q.Where("exam_type = ?", v)
	}
	if v := c.Query("academic_year"); v != "" {
		q = q.Where("academic_year = ?", v)
	}

	var records []model.MarksModel
	if err := q.Order("obtained_marks DESC").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch marks")
	}

	passCount := 0
	var sum float64
	for _, m := range records {
		if m.Passed {
			passCount++
		}
		sum += m.Percentage
	}
	avg := 0.0
	if len(records) > 0 {
		avg = sum / float64(len(records))
	}

	return helper.JsonOK(c, "", fiber.Map{
		"marks": dto.ToMarksResponseList(records),
		"statistics": fiber.Map{
			"total":              len(records),
			"passed":             passCount,
			"failed":             len(records) - passCount,
			"average_percentage": avg,
		},
	})
}

// GET /api/marks/analytics/performance (admin, teacher)
func (ctrl *MarksController) PerformanceAnalytics(c *fiber.Ctx) error {
	base := ctrl.DB.Table("marks m").Joins("JOIN students st ON st.id = m.student_id")
	if v := c.Query("department"); v != "" {
		base = base.Where("st.department = ?", v)
	}
	if v := c.Query("academic_year"); v != "" {
		base = base.Where("m.academic_year = ?", v)
	}

	type gradeRow struct {
		Grade string `json:"grade"`
		Count int    `json:"count"`
	}
	var grades []gradeRow
	if err := base.Session(&gorm.Session{}).
		Select("m.grade, COUNT(*) AS count").
		Group("m.grade").Order("m.grade").
		Scan(&grades).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate grade distribution")
	}

	type deptRow struct {
		Department string  `json:"department"`
		Average    float64 `json:"average_percentage"`
		PassRate   float64 `json:"pass_rate"`
		Count      int     `json:"count"`
	}
	var byDept []deptRow
	if err := base.Session(&gorm.Session{}).
		Select(`st.department,
			ROUND(AVG(m.percentage)::numeric, 2) AS average,
			ROUND(100.0 * COUNT(*) FILTER (WHERE m.passed) / COUNT(*), 2) AS pass_rate,
			COUNT(*) AS count`).
		Group("st.department").
		Scan(&byDept).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate department performance")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"grade_distribution": grades,
		"department_wise":    byDept,
	})
}
