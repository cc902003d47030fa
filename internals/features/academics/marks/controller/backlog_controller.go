package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/marks/dto"
	"campushub_backend/internals/features/academics/marks/model"
	"campushub_backend/internals/features/academics/marks/service"
	studentmodel "campushub_backend/internals/features/academics/students/model"
	notifmodel "campushub_backend/internals/features/home/notifications/model"
	notifier "campushub_backend/internals/features/home/notifications/service"
	helper "campushub_backend/internals/helpers"
)

type BacklogController struct {
	DB *gorm.DB
}

func NewBacklogController(db *gorm.DB) *BacklogController {
	return &BacklogController{DB: db}
}

// GET /api/marks/backlogs/:studentId
func (ctrl *BacklogController) GetStudentBacklogs(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	q := ctrl.DB.Preload("Subject").Preload("Attempts", func(db *gorm.DB) *gorm.DB {
		return db.Order("attempt_number ASC")
	}).Where("student_id = ?", studentID)
	if v := c.Query("status"); v != "" {
		q = q.Where("status = ?", v)
	}

	var backlogs []model.BacklogModel
	if err := q.Order("created_at DESC").Find(&backlogs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch backlogs")
	}

	open, cleared := 0, 0
	for _, b := range backlogs {
		switch b.Status {
		case model.BacklogCleared:
			cleared++
		default:
			open++
		}
	}

	return helper.JsonOK(c, "", fiber.Map{
		"backlogs": dto.ToBacklogResponseList(backlogs),
		"summary": fiber.Map{
			"total":   len(backlogs),
			"open":    open,
			"cleared": cleared,
		},
	})
}

// POST /api/marks/backlogs/register (student)
//
// Registers a re-exam attempt for an open backlog. Only the owning
// student may register; a cleared or already-registered backlog is
// rejected.
func (ctrl *BacklogController) RegisterExam(c *fiber.Ctx) error {
	var req dto.RegisterBacklogExamRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}
	examDate, err := time.Parse("2006-01-02", req.ExamDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam date")
	}

	var backlog model.BacklogModel
	if err := ctrl.DB.Preload("Subject").First(&backlog, "id = ?", req.BacklogID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Backlog not found")
	}

	role, _ := helper.GetRoleFromToken(c)
	if role == constants.RoleStudent {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		var student studentmodel.StudentModel
		if err := ctrl.DB.First(&student, "user_id = ?", userID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
		}
		if student.ID != backlog.StudentID {
			return helper.JsonError(c, fiber.StatusForbidden, "You can only register for your own backlog exams")
		}
	}

	switch backlog.Status {
	case model.BacklogCleared:
		return helper.JsonError(c, fiber.StatusConflict, "Backlog already cleared")
	case model.BacklogRegistered:
		return helper.JsonError(c, fiber.StatusConflict, "Already registered for this backlog exam")
	}

	var priorAttempts int64
	if err := ctrl.DB.Model(&model.BacklogAttempt{}).
		Where("backlog_id = ?", backlog.ID).Count(&priorAttempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count attempts")
	}

	academicYear := req.AcademicYear
	if academicYear == "" {
		academicYear = helper.CurrentAcademicYear()
	}
	attempt := model.BacklogAttempt{
		BacklogID:     backlog.ID,
		AttemptNumber: int(priorAttempts) + 1,
		AcademicYear:  academicYear,
		ExamDate:      examDate,
	}
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}
		return tx.Model(&backlog).Update("status", model.BacklogRegistered).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register for exam")
	}
	backlog.Status = model.BacklogRegistered

	return helper.JsonCreated(c, "Registered for backlog exam", fiber.Map{
		"backlog": dto.ToBacklogResponse(backlog),
		"attempt": dto.ToBacklogAttemptResponse(attempt),
	})
}

// PUT /api/marks/backlogs/attempts/:attemptId (teacher, admin)
//
// Grades a registered attempt with an explicit Pass/Fail/Absent result.
// A pass clears the backlog for good; fail or absent reopens it.
func (ctrl *BacklogController) UpdateAttempt(c *fiber.Ctx) error {
	attemptID, err := uuid.Parse(c.Params("attemptId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attempt id")
	}

	var req dto.UpdateBacklogAttemptRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}
	result := model.AttemptResult(req.Result)
	if result != model.AttemptAbsent {
		if req.ObtainedMarks == nil || req.MaxMarks == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Marks are required unless the student was absent")
		}
		if *req.ObtainedMarks > *req.MaxMarks {
			return helper.JsonError(c, fiber.StatusBadRequest, "Obtained marks cannot exceed maximum marks")
		}
	}

	var attempt model.BacklogAttempt
	if err := ctrl.DB.First(&attempt, "id = ?", attemptID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Attempt not found")
	}

	var backlog model.BacklogModel
	if err := ctrl.DB.Preload("Subject").First(&backlog, "id = ?", attempt.BacklogID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Backlog not found")
	}
	if backlog.Status == model.BacklogCleared {
		return helper.JsonError(c, fiber.StatusConflict, "Backlog already cleared")
	}

	attempt.Remarks = req.Remarks
	outcome := service.AttemptOutcome{
		Result:        result,
		ObtainedMarks: req.ObtainedMarks,
		MaxMarks:      req.MaxMarks,
	}
	if err := service.RecordAttemptResult(ctrl.DB, &backlog, &attempt, outcome); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record attempt result")
	}

	var student studentmodel.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", backlog.StudentID).Error; err == nil {
		subjectName := ""
		if backlog.Subject != nil {
			subjectName = backlog.Subject.Name
		}
		title, msg := "Backlog Exam Result", ""
		if backlog.Status == model.BacklogCleared {
			msg = fmt.Sprintf("Congratulations! You cleared your backlog in %s.", subjectName)
		} else {
			msg = fmt.Sprintf("Backlog exam result for %s: not cleared. You may register again.", subjectName)
		}
		notifier.Notify(ctrl.DB, notifmodel.NotificationModel{
			RecipientID:   student.UserID,
			RecipientRole: "student",
			Title:         title,
			Message:       msg,
			Type:          notifmodel.TypeMarks,
		})
	}

	return helper.JsonUpdated(c, "Attempt recorded", fiber.Map{
		"backlog": dto.ToBacklogResponse(backlog),
		"attempt": dto.ToBacklogAttemptResponse(attempt),
	})
}

// GET /api/marks/backlogs/analytics (admin)
func (ctrl *BacklogController) Analytics(c *fiber.Ctx) error {
	type deptRow struct {
		Department string `json:"department"`
		Open       int    `json:"open"`
		Registered int    `json:"registered"`
		Cleared    int    `json:"cleared"`
		Total      int    `json:"total"`
	}
	var byDept []deptRow
	err := ctrl.DB.Table("backlogs b").
		Joins("JOIN students st ON st.id = b.student_id").
		Select(`st.department,
			COUNT(*) FILTER (WHERE b.status = 'Open') AS open,
			COUNT(*) FILTER (WHERE b.status = 'Registered') AS registered,
			COUNT(*) FILTER (WHERE b.status = 'Cleared') AS cleared,
			COUNT(*) AS total`).
		Where("b.deleted_at IS NULL").
		Group("st.department").
		Scan(&byDept).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate backlogs")
	}

	type subjectRow struct {
		SubjectName string `json:"subject_name"`
		SubjectCode string `json:"subject_code"`
		Count       int    `json:"count"`
	}
	var bySubject []subjectRow
	err = ctrl.DB.Table("backlogs b").
		Joins("JOIN subjects s ON s.id = b.subject_id").
		Select("s.name AS subject_name, s.code AS subject_code, COUNT(*) AS count").
		Where("b.deleted_at IS NULL AND b.status <> 'Cleared'").
		Group("s.name, s.code").
		Order("count DESC").
		Limit(10).
		Scan(&bySubject).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate backlog subjects")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"department_wise": byDept,
		"top_subjects":    bySubject,
	})
}
