package service

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campushub_backend/internals/features/academics/marks/model"
)

// ShouldPromote reports whether an entered result creates a backlog:
// only a failing End-Term entry does.
func ShouldPromote(m model.MarksModel) bool {
	return m.ExamType == model.ExamEndTerm && !IsPassing(m.Percentage)
}

// PromoteBacklog records (or refreshes) a backlog for a failed End-Term
// result. The row is keyed on (student, subject, original academic year);
// re-entering the failing marks updates the stored original score. A backlog
// that was already cleared is left alone.
func PromoteBacklog(db *gorm.DB, m model.MarksModel) error {
	var existing model.BacklogModel
	err := db.Where("student_id = ? AND subject_id = ? AND original_academic_year = ?",
		m.StudentID, m.SubjectID, m.AcademicYear).First(&existing).Error

	if err == nil {
		if existing.Status == model.BacklogCleared {
			return nil
		}
		existing.OriginalMarks = m.ObtainedMarks
		existing.OriginalPercentage = m.Percentage
		existing.Semester = m.Semester
		return db.Save(&existing).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	backlog := model.BacklogModel{
		StudentID:            m.StudentID,
		SubjectID:            m.SubjectID,
		OriginalAcademicYear: m.AcademicYear,
		Semester:             m.Semester,
		Status:               model.BacklogOpen,
		OriginalMarks:        m.ObtainedMarks,
		OriginalPercentage:   m.Percentage,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "student_id"}, {Name: "subject_id"}, {Name: "original_academic_year"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"original_marks", "original_percentage", "semester", "updated_at",
		}),
	}).Create(&backlog).Error
}

// AttemptOutcome is the graded result of a re-exam attempt. Marks are nil
// when the student was absent.
type AttemptOutcome struct {
	Result        model.AttemptResult
	ObtainedMarks *float64
	MaxMarks      *float64
}

// ApplyAttemptOutcome writes an outcome onto the attempt and moves the
// backlog: Pass clears it for good and freezes the cleared date and marks,
// Fail or Absent reopens it so the student can register again.
func ApplyAttemptOutcome(backlog *model.BacklogModel, attempt *model.BacklogAttempt, outcome AttemptOutcome, now time.Time) {
	result := outcome.Result
	attempt.Result = &result
	attempt.ObtainedMarks = outcome.ObtainedMarks
	attempt.MaxMarks = outcome.MaxMarks

	if result == model.AttemptPass {
		backlog.Status = model.BacklogCleared
		backlog.ClearedDate = &now
		backlog.ClearedMarks = outcome.ObtainedMarks
	} else {
		backlog.Status = model.BacklogOpen
	}
}

// RecordAttemptResult persists a graded re-exam attempt and its effect on
// the backlog.
func RecordAttemptResult(db *gorm.DB, backlog *model.BacklogModel, attempt *model.BacklogAttempt, outcome AttemptOutcome) error {
	ApplyAttemptOutcome(backlog, attempt, outcome, time.Now())
	if err := db.Save(attempt).Error; err != nil {
		return err
	}
	return db.Save(backlog).Error
}
