package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	studentmodel "campushub_backend/internals/features/academics/students/model"
	"campushub_backend/internals/features/campus/scholarships/dto"
	"campushub_backend/internals/features/campus/scholarships/model"
	"campushub_backend/internals/features/campus/scholarships/service"
	notifmodel "campushub_backend/internals/features/home/notifications/model"
	notifier "campushub_backend/internals/features/home/notifications/service"
	helper "campushub_backend/internals/helpers"
)

type ScholarshipController struct {
	DB *gorm.DB
}

func NewScholarshipController(db *gorm.DB) *ScholarshipController {
	return &ScholarshipController{DB: db}
}

// POST /api/scholarships (admin)
func (ctrl *ScholarshipController) Create(c *fiber.Ctx) error {
	var req dto.CreateScholarshipRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}
	if !req.Amount.IsPositive() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Amount must be positive")
	}
	deadline, err := time.Parse("2006-01-02", req.ApplicationDeadline)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application deadline")
	}

	scheme := model.ScholarshipModel{
		Name:                req.Name,
		Description:         req.Description,
		Provider:            req.Provider,
		Amount:              req.Amount,
		EligibleCategories:  req.EligibleCategories,
		EligibleDepartments: req.EligibleDepartments,
		MinPercentage:       req.MinPercentage,
		MaxFamilyIncome:     req.MaxFamilyIncome,
		ApplicationDeadline: deadline,
		DocumentsRequired:   req.DocumentsRequired,
		IsActive:            true,
	}
	if err := ctrl.DB.Create(&scheme).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create scholarship")
	}
	return helper.JsonCreated(c, "Scholarship created", dto.ToScholarshipResponse(scheme))
}

// GET /api/scholarships
func (ctrl *ScholarshipController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.ScholarshipModel{})
	role, _ := helper.GetRoleFromToken(c)
	if role != constants.RoleAdmin || c.Query("include_inactive") != "true" {
		q = q.Where("is_active = true")
	}
	// Non-admins only see schemes still open for applications.
	if role != constants.RoleAdmin {
		q = q.Where("application_deadline >= ?", time.Now())
	}

	var schemes []model.ScholarshipModel
	if err := q.Order("application_deadline ASC").Find(&schemes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch scholarships")
	}
	return helper.JsonOK(c, "", dto.ToScholarshipResponseList(schemes))
}

// PUT /api/scholarships/:id (admin)
func (ctrl *ScholarshipController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid scholarship id")
	}

	var req dto.UpdateScholarshipRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var scheme model.ScholarshipModel
	if err := ctrl.DB.First(&scheme, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Scholarship not found")
	}

	if req.Name != nil {
		scheme.Name = *req.Name
	}
	if req.Description != nil {
		scheme.Description = *req.Description
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Amount must be positive")
		}
		scheme.Amount = *req.Amount
	}
	if req.ApplicationDeadline != nil {
		d, err := time.Parse("2006-01-02", *req.ApplicationDeadline)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application deadline")
		}
		scheme.ApplicationDeadline = d
	}
	if req.IsActive != nil {
		scheme.IsActive = *req.IsActive
	}

	if err := ctrl.DB.Save(&scheme).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update scholarship")
	}
	return helper.JsonUpdated(c, "Scholarship updated", dto.ToScholarshipResponse(scheme))
}

// POST /api/scholarships/:id/apply (student)
//
// Eligibility gates are checked in order so the student gets the specific
// reason for rejection rather than a generic one.
func (ctrl *ScholarshipController) Apply(c *fiber.Ctx) error {
	scholarshipID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid scholarship id")
	}

	var scheme model.ScholarshipModel
	if err := ctrl.DB.First(&scheme, "id = ?", scholarshipID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Scholarship not found")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var student studentmodel.StudentModel
	if err := ctrl.DB.First(&student, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
	}

	if err := service.CheckEligibility(scheme, student, time.Now()); err != nil {
		switch {
		case errors.Is(err, service.ErrClosed):
			return helper.JsonError(c, fiber.StatusBadRequest, "Scholarship is closed for applications")
		case errors.Is(err, service.ErrDepartmentMismatch):
			return helper.JsonError(c, fiber.StatusBadRequest, "Your department is not eligible for this scholarship")
		case errors.Is(err, service.ErrCategoryMismatch):
			return helper.JsonError(c, fiber.StatusBadRequest, "Your category is not eligible for this scholarship")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Not eligible for this scholarship")
	}

	application := model.ScholarshipApplication{
		ScholarshipID: scheme.ID,
		StudentID:     student.ID,
		Status:        model.ApplicationPending,
	}
	if err := ctrl.DB.Create(&application).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "You have already applied for this scholarship")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit application")
	}
	return helper.JsonCreated(c, "Application submitted", dto.ToApplicationResponse(application))
}

// GET /api/scholarships/applications/my (student)
func (ctrl *ScholarshipController) MyApplications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var student studentmodel.StudentModel
	if err := ctrl.DB.First(&student, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
	}

	var applications []model.ScholarshipApplication
	if err := ctrl.DB.Preload("Scholarship").
		Where("student_id = ?", student.ID).
		Order("created_at DESC").
		Find(&applications).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch applications")
	}
	return helper.JsonOK(c, "", dto.ToApplicationResponseList(applications))
}

// GET /api/scholarships/:id/applications (admin)
func (ctrl *ScholarshipController) Applications(c *fiber.Ctx) error {
	scholarshipID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid scholarship id")
	}

	q := ctrl.DB.Preload("Scholarship").Where("scholarship_id = ?", scholarshipID)
	if v := c.Query("status"); v != "" {
		q = q.Where("status = ?", v)
	}

	var applications []model.ScholarshipApplication
	if err := q.Order("created_at ASC").Find(&applications).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch applications")
	}
	return helper.JsonOK(c, "", dto.ToApplicationResponseList(applications))
}

// PUT /api/scholarships/applications/:applicationId/review (admin)
func (ctrl *ScholarshipController) ReviewApplication(c *fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("applicationId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}

	var req dto.ReviewApplicationRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var application model.ScholarshipApplication
	if err := ctrl.DB.Preload("Scholarship").First(&application, "id = ?", applicationID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
	}
	if application.Status != model.ApplicationPending {
		return helper.JsonError(c, fiber.StatusConflict, "Application has already been reviewed")
	}

	reviewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	now := time.Now()
	application.Status = model.ApplicationStatus(req.Status)
	application.Remarks = req.Remarks
	application.ReviewedBy = &reviewerID
	application.ReviewedAt = &now

	if err := ctrl.DB.Save(&application).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to review application")
	}

	var student studentmodel.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", application.StudentID).Error; err == nil {
		schemeName := ""
		if application.Scholarship != nil {
			schemeName = application.Scholarship.Name
		}
		notifier.Notify(ctrl.DB, notifmodel.NotificationModel{
			RecipientID:   student.UserID,
			RecipientRole: "student",
			Title:         fmt.Sprintf("Scholarship Application %s", req.Status),
			Message:       fmt.Sprintf("Your application for %s has been %s.", schemeName, req.Status),
			Type:          notifmodel.TypeScholarship,
		})
	}

	return helper.JsonUpdated(c, "Application reviewed", dto.ToApplicationResponse(application))
}
