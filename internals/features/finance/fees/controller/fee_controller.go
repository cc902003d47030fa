package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	studentmodel "campushub_backend/internals/features/academics/students/model"
	"campushub_backend/internals/features/finance/fees/dto"
	"campushub_backend/internals/features/finance/fees/model"
	"campushub_backend/internals/features/finance/fees/service"
	notifmodel "campushub_backend/internals/features/home/notifications/model"
	notifier "campushub_backend/internals/features/home/notifications/service"
	helper "campushub_backend/internals/helpers"
)

type FeeController struct {
	DB *gorm.DB
}

func NewFeeController(db *gorm.DB) *FeeController {
	return &FeeController{DB: db}
}

// POST /api/fees/assign (admin)
func (ctrl *FeeController) Assign(c *fiber.Ctx) error {
	var req dto.AssignFeeRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	fee, err := ctrl.assignOne(req.StudentID, req.FeeStructureID)
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Fee already assigned to this student")
		}
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student or fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign fee")
	}
	return helper.JsonCreated(c, "Fee assigned", dto.ToFeeResponse(*fee))
}

// POST /api/fees/assign/bulk (admin)
//
// Assigns one structure to many students. Failures are collected and
// reported per student; the batch never aborts.
func (ctrl *FeeController) BulkAssign(c *fiber.Ctx) error {
	var req dto.BulkAssignFeeRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	assigned := make([]dto.FeeResponse, 0, len(req.StudentIDs))
	skipped := make([]fiber.Map, 0)
	for _, studentID := range req.StudentIDs {
		fee, err := ctrl.assignOne(studentID, req.FeeStructureID)
		if err != nil {
			reason := "database error"
			switch {
			case helper.IsUniqueViolation(err):
				reason = "already assigned"
			case helper.IsNotFound(err):
				reason = "student or structure not found"
			}
			skipped = append(skipped, fiber.Map{"student_id": studentID, "reason": reason})
			continue
		}
		assigned = append(assigned, dto.ToFeeResponse(*fee))
	}

	return helper.JsonCreated(c,
		fmt.Sprintf("Fee assigned to %d students", len(assigned)),
		fiber.Map{"assigned": assigned, "skipped": skipped})
}

func (ctrl *FeeController) assignOne(studentID, structureID uuid.UUID) (*model.FeeModel, error) {
	var student studentmodel.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return nil, err
	}
	var structure model.FeeStructureModel
	if err := ctrl.DB.First(&structure, "id = ? AND is_active = true", structureID).Error; err != nil {
		return nil, err
	}

	fee := model.FeeModel{
		StudentID:      student.ID,
		FeeStructureID: structure.ID,
		Semester:       structure.Semester,
		AcademicYear:   structure.AcademicYear,
		TotalAmount:    structure.TotalAmount,
		PaidAmount:     decimal.Zero,
		DueAmount:      structure.TotalAmount,
		DueDate:        structure.DueDate,
		Status:         model.FeePending,
	}
	if err := ctrl.DB.Create(&fee).Error; err != nil {
		return nil, err
	}

	notifier.Notify(ctrl.DB, notifmodel.NotificationModel{
		RecipientID:   student.UserID,
		RecipientRole: "student",
		Title:         "Fee Assigned",
		Message: fmt.Sprintf("Semester %d fee of %s has been assigned. Due by %s.",
			structure.Semester, structure.TotalAmount.StringFixed(2), structure.DueDate.Format("02/01/2006")),
		Type: notifmodel.TypeFees,
	})
	return &fee, nil
}

// GET /api/fees/student/:studentId
func (ctrl *FeeController) GetStudentFees(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var fees []model.FeeModel
	if err := ctrl.DB.Preload("FeeStructure").
		Where("student_id = ?", studentID).
		Order("academic_year DESC, semester DESC").
		Find(&fees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fees")
	}

	total, paid, due := decimal.Zero, decimal.Zero, decimal.Zero
	for _, f := range fees {
		total = total.Add(f.TotalAmount)
		paid = paid.Add(f.PaidAmount)
		due = due.Add(f.DueAmount)
	}

	return helper.JsonOK(c, "", fiber.Map{
		"fees": dto.ToFeeResponseList(fees),
		"summary": fiber.Map{
			"total_amount": total,
			"paid_amount":  paid,
			"due_amount":   due,
		},
	})
}

// POST /api/fees/payments (admin collects, student pays online)
func (ctrl *FeeController) RecordPayment(c *fiber.Ctx) error {
	var req dto.RecordPaymentRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var collectedBy *uuid.UUID
	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		collectedBy = &userID
	}

	payment, fee, err := service.ApplyPayment(ctrl.DB, service.PaymentInput{
		FeeID:       req.FeeID,
		Amount:      req.Amount,
		Mode:        model.PaymentMode(req.Mode),
		CollectedBy: collectedBy,
		Remarks:     req.Remarks,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFeeNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Fee account not found")
		case errors.Is(err, service.ErrInvalidAmount):
			return helper.JsonError(c, fiber.StatusBadRequest, "Payment amount must be positive")
		case errors.Is(err, service.ErrAmountExceedsDue):
			return helper.JsonError(c, fiber.StatusBadRequest, "Payment amount exceeds due amount")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record payment")
	}

	ctrl.notifyPayment(*payment, *fee)

	return helper.JsonCreated(c, "Payment recorded", fiber.Map{
		"payment": dto.ToPaymentResponse(*payment),
		"fee":     dto.ToFeeResponse(*fee),
	})
}

func (ctrl *FeeController) notifyPayment(payment model.PaymentModel, fee model.FeeModel) {
	var student studentmodel.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", fee.StudentID).Error; err != nil {
		return
	}
	notifier.Notify(ctrl.DB, notifmodel.NotificationModel{
		RecipientID:   student.UserID,
		RecipientRole: "student",
		Title:         "Payment Received",
		Message: fmt.Sprintf("Payment of %s received. Receipt %s. Balance due: %s.",
			payment.Amount.StringFixed(2), payment.ReceiptNumber, fee.DueAmount.StringFixed(2)),
		Type: notifmodel.TypeFees,
	})
}

// GET /api/fees/payments/history/:studentId
func (ctrl *FeeController) PaymentHistory(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var payments []model.PaymentModel
	if err := ctrl.DB.Where("student_id = ?", studentID).
		Order("paid_at DESC").Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payment history")
	}
	return helper.JsonOK(c, "", dto.ToPaymentResponseList(payments))
}

// POST /api/fees/payments/checkout (student)
//
// Opens an online payment session through the gateway for a fee's
// outstanding balance.
func (ctrl *FeeController) Checkout(c *fiber.Ctx) error {
	var req dto.RecordPaymentRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var fee model.FeeModel
	if err := ctrl.DB.First(&fee, "id = ?", req.FeeID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Fee account not found")
	}
	if !req.Amount.IsPositive() || req.Amount.GreaterThan(fee.DueAmount) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment amount")
	}

	var payer struct {
		FirstName string
		LastName  string
		Email     string
		Phone     *string
	}
	err := ctrl.DB.Table("students st").
		Joins("JOIN users u ON u.id = st.user_id").
		Select("u.first_name, u.last_name, u.email, u.phone").
		Where("st.id = ?", fee.StudentID).
		Scan(&payer).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load payer details")
	}

	orderID := fmt.Sprintf("FEE-%s-%s", fee.ID.String()[:8], service.GenerateTransactionID())
	phone := ""
	if payer.Phone != nil {
		phone = *payer.Phone
	}
	token, redirectURL, err := service.GenerateSnapToken(orderID, req.Amount,
		fmt.Sprintf("Semester %d Fee", fee.Semester),
		service.PayerInput{
			FirstName: payer.FirstName,
			LastName:  payer.LastName,
			Email:     payer.Email,
			Phone:     phone,
		})
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment gateway unavailable")
	}

	return helper.JsonOK(c, "Payment session created", fiber.Map{
		"order_id":     orderID,
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}

// POST /api/fees/payments/notification (gateway webhook, unauthenticated)
//
// Midtrans calls this endpoint on payment status changes. The signature is
// verified before any state change; settled transactions are applied as
// Online payments. The order id embeds the fee id in its second segment.
func (ctrl *FeeController) GatewayNotification(c *fiber.Ctx) error {
	var payload struct {
		OrderID           string `json:"order_id"`
		StatusCode        string `json:"status_code"`
		GrossAmount       string `json:"gross_amount"`
		SignatureKey      string `json:"signature_key"`
		TransactionStatus string `json:"transaction_status"`
		TransactionID     string `json:"transaction_id"`
		FraudStatus       string `json:"fraud_status"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if !service.VerifyWebhookSignature(payload.OrderID, payload.StatusCode, payload.GrossAmount, payload.SignatureKey) {
		return helper.JsonError(c, fiber.StatusForbidden, "Invalid signature")
	}

	settled := payload.TransactionStatus == "settlement" ||
		(payload.TransactionStatus == "capture" && payload.FraudStatus == "accept")
	if !settled {
		return helper.JsonOK(c, "Notification acknowledged", fiber.Map{"status": payload.TransactionStatus})
	}

	var feeIDPrefix string
	if _, err := fmt.Sscanf(payload.OrderID, "FEE-%8s-", &feeIDPrefix); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unrecognized order id")
	}
	var fee model.FeeModel
	if err := ctrl.DB.Where("id::text LIKE ?", feeIDPrefix+"%").First(&fee).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Fee account not found for order")
	}

	amount, err := decimal.NewFromString(payload.GrossAmount)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid gross amount")
	}

	gatewayRef := payload.TransactionID
	payment, updated, err := service.ApplyPayment(ctrl.DB, service.PaymentInput{
		FeeID:      fee.ID,
		Amount:     amount,
		Mode:       model.PayOnline,
		GatewayRef: &gatewayRef,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to apply gateway payment")
	}
	ctrl.notifyPayment(*payment, *updated)

	return helper.JsonOK(c, "Payment settled", fiber.Map{"receipt_number": payment.ReceiptNumber})
}

// GET /api/fees/overdue (admin)
func (ctrl *FeeController) Overdue(c *fiber.Ctx) error {
	var fees []model.FeeModel
	err := ctrl.DB.Preload("Student").
		Where("due_amount > 0 AND due_date < ?", time.Now()).
		Order("due_date ASC").
		Find(&fees).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch overdue fees")
	}
	return helper.JsonOK(c, "", dto.ToFeeResponseList(fees))
}

// GET /api/fees/analytics (admin)
func (ctrl *FeeController) Analytics(c *fiber.Ctx) error {
	type totalsRow struct {
		Total     decimal.Decimal `json:"total"`
		Collected decimal.Decimal `json:"collected"`
		Due       decimal.Decimal `json:"due"`
	}
	var totals totalsRow
	base := ctrl.DB.Table("fees").Where("deleted_at IS NULL")
	if v := c.Query("academic_year"); v != "" {
		base = base.Where("academic_year = ?", v)
	}
	if err := base.Session(&gorm.Session{}).
		Select(`COALESCE(SUM(total_amount), 0) AS total,
			COALESCE(SUM(paid_amount), 0) AS collected,
			COALESCE(SUM(due_amount), 0) AS due`).
		Scan(&totals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate fees")
	}

	type deptRow struct {
		Department string          `json:"department"`
		Total      decimal.Decimal `json:"total"`
		Collected  decimal.Decimal `json:"collected"`
		Due        decimal.Decimal `json:"due"`
	}
	var byDept []deptRow
	if err := base.Session(&gorm.Session{}).
		Joins("JOIN students st ON st.id = fees.student_id").
		Select(`st.department,
			COALESCE(SUM(fees.total_amount), 0) AS total,
			COALESCE(SUM(fees.paid_amount), 0) AS collected,
			COALESCE(SUM(fees.due_amount), 0) AS due`).
		Group("st.department").
		Scan(&byDept).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate department fees")
	}

	type modeRow struct {
		Mode   string          `json:"mode"`
		Amount decimal.Decimal `json:"amount"`
		Count  int             `json:"count"`
	}
	var byMode []modeRow
	if err := ctrl.DB.Table("payments").
		Select("mode, COALESCE(SUM(amount), 0) AS amount, COUNT(*) AS count").
		Group("mode").
		Scan(&byMode).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate payment modes")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"totals":          totals,
		"department_wise": byDept,
		"payment_modes":   byMode,
	})
}
