package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	helper "campushub_backend/internals/helpers"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportController builds downloadable Excel workbooks for the admin
// office. Each export streams the workbook straight to the response.
type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func sendWorkbook(c *fiber.Ctx, f *excelize.File, filename string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// GET /api/reports/attendance (admin)
//
// Attendance register for a month, one row per student per subject.
func (ctrl *ReportController) AttendanceRegister(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid month, expected YYYY-MM")
	}
	end := start.AddDate(0, 1, 0)

	type row struct {
		RollNumber  string
		StudentName string
		SubjectCode string
		Department  string
		Semester    int
		Total       int
		Present     int
	}
	var rows []row
	q := ctrl.DB.Table("attendances a").
		Joins("JOIN students st ON st.id = a.student_id").
		Joins("JOIN users u ON u.id = st.user_id").
		Joins("JOIN subjects s ON s.id = a.subject_id").
		Where("a.date >= ? AND a.date < ?", start, end).
		Select(`st.roll_number,
			u.first_name || ' ' || u.last_name AS student_name,
			s.code AS subject_code,
			a.department, a.semester,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE a.status IN ('Present','Late')) AS present`).
		Group("st.roll_number, student_name, s.code, a.department, a.semester").
		Order("a.department, a.semester, st.roll_number")
	if v := c.Query("department"); v != "" {
		q = q.Where("a.department = ?", v)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build attendance report")
	}

	f := excelize.NewFile()
	sheet := "Attendance"
	f.SetSheetName(f.GetSheetName(0), sheet)
	_ = writeRow(f, sheet, 1, []interface{}{
		"Roll Number", "Student", "Subject", "Department", "Semester",
		"Lectures", "Attended", "Percentage",
	})
	for i, r := range rows {
		pct := 0
		if r.Total > 0 {
			pct = int(float64(r.Present)/float64(r.Total)*100 + 0.5)
		}
		_ = writeRow(f, sheet, i+2, []interface{}{
			r.RollNumber, r.StudentName, r.SubjectCode, r.Department, r.Semester,
			r.Total, r.Present, pct,
		})
	}

	return sendWorkbook(c, f, fmt.Sprintf("attendance-%s.xlsx", month))
}

// GET /api/reports/marks (admin)
//
// Marks sheet for one subject and exam type.
func (ctrl *ReportController) MarksSheet(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Query("subject_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "subject_id is required")
	}
	examType := c.Query("exam_type")
	if examType == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "exam_type is required")
	}

	type row struct {
		RollNumber  string
		StudentName string
		Obtained    float64
		Max         float64
		Percentage  float64
		Grade       string
		Passed      bool
	}
	var rows []row
	err = ctrl.DB.Table("marks m").
		Joins("JOIN students st ON st.id = m.student_id").
		Joins("JOIN users u ON u.id = st.user_id").
		Where("m.subject_id = ? AND m.exam_type = ? AND m.deleted_at IS NULL", subjectID, examType).
		Select(`st.roll_number,
			u.first_name || ' ' || u.last_name AS student_name,
			m.obtained_marks AS obtained,
			m.max_marks AS max,
			m.percentage, m.grade, m.passed`).
		Order("st.roll_number").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build marks report")
	}

	f := excelize.NewFile()
	sheet := "Marks"
	f.SetSheetName(f.GetSheetName(0), sheet)
	_ = writeRow(f, sheet, 1, []interface{}{
		"Roll Number", "Student", "Obtained", "Max", "Percentage", "Grade", "Result",
	})
	for i, r := range rows {
		result := "Fail"
		if r.Passed {
			result = "Pass"
		}
		_ = writeRow(f, sheet, i+2, []interface{}{
			r.RollNumber, r.StudentName, r.Obtained, r.Max, r.Percentage, r.Grade, result,
		})
	}

	return sendWorkbook(c, f, fmt.Sprintf("marks-%s.xlsx", examType))
}

// GET /api/reports/fees (admin)
//
// Fee collection register, one row per payment in the date range.
func (ctrl *ReportController) FeeCollection(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		start = time.Now().AddDate(0, -1, 0)
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		end = time.Now()
	}

	type row struct {
		ReceiptNumber string
		RollNumber    string
		StudentName   string
		Amount        float64
		Mode          string
		PaidAt        time.Time
	}
	var rows []row
	err = ctrl.DB.Table("payments p").
		Joins("JOIN students st ON st.id = p.student_id").
		Joins("JOIN users u ON u.id = st.user_id").
		Where("p.paid_at >= ? AND p.paid_at < ?", start, end.AddDate(0, 0, 1)).
		Select(`p.receipt_number,
			st.roll_number,
			u.first_name || ' ' || u.last_name AS student_name,
			p.amount, p.mode, p.paid_at`).
		Order("p.paid_at").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build fee report")
	}

	f := excelize.NewFile()
	sheet := "Collections"
	f.SetSheetName(f.GetSheetName(0), sheet)
	_ = writeRow(f, sheet, 1, []interface{}{
		"Receipt", "Roll Number", "Student", "Amount", "Mode", "Paid At",
	})
	var grand float64
	for i, r := range rows {
		grand += r.Amount
		_ = writeRow(f, sheet, i+2, []interface{}{
			r.ReceiptNumber, r.RollNumber, r.StudentName, r.Amount, r.Mode,
			r.PaidAt.Format("02/01/2006 15:04"),
		})
	}
	_ = writeRow(f, sheet, len(rows)+3, []interface{}{"", "", "Total", grand})

	return sendWorkbook(c, f, "fee-collections.xlsx")
}
