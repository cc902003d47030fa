package controller

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/students/dto"
	"campushub_backend/internals/features/academics/students/model"
	subjectmodel "campushub_backend/internals/features/academics/subjects/model"
	usermodel "campushub_backend/internals/features/users/auth/model"
	helper "campushub_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// POST /api/students (admin)
//
// Creates the login account and the student profile in one transaction.
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date of birth")
	}
	if req.Section == "" {
		req.Section = "A"
	}
	if req.Category == "" {
		req.Category = "General"
	}

	user := usermodel.UserModel{
		Email:     req.Email,
		Role:      constants.RoleStudent,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		IsActive:  true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	var student model.StudentModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		student = model.StudentModel{
			UserID:           user.ID,
			RollNumber:       req.RollNumber,
			EnrollmentNumber: req.EnrollmentNumber,
			AdmissionDate:    time.Now(),
			Department:       req.Department,
			Course:           req.Course,
			Semester:         req.Semester,
			Section:          req.Section,
			Batch:            req.Batch,
			DateOfBirth:      dob,
			Gender:           req.Gender,
			Category:         req.Category,
			BloodGroup:       req.BloodGroup,
			AadharNumber:     req.AadharNumber,
			ParentGuardianID: req.ParentGuardianID,
			IsActive:         true,
		}
		if err := tx.Create(&student).Error; err != nil {
			return err
		}
		return tx.Model(&user).Update("student_profile_id", student.ID).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email or roll number already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}

	return helper.JsonCreated(c, "Student created", dto.ToStudentResponse(student))
}

// GET /api/students (admin, teacher)
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "roll_number", "asc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.StudentModel{})
	if v := c.Query("department"); v != "" {
		q = q.Where("department = ?", v)
	}
	if v := c.QueryInt("semester"); v > 0 {
		q = q.Where("semester = ?", v)
	}
	if v := c.Query("section"); v != "" {
		q = q.Where("section = ?", v)
	}
	if v := c.Query("batch"); v != "" {
		q = q.Where("batch = ?", v)
	}
	if v := c.Query("search"); v != "" {
		q = q.Where("roll_number ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var students []model.StudentModel
	if err := q.Order(p.SortBy + " " + p.SortOrder).
		Offset(p.Offset()).Limit(p.Limit()).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}
	return helper.JsonList(c, "", dto.ToStudentResponseList(students), helper.BuildMeta(total, p))
}

// GET /api/students/:id
func (ctrl *StudentController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var student model.StudentModel
	if err := ctrl.DB.Preload("EnrolledSubjects").First(&student, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.JsonOK(c, "", dto.ToStudentResponse(student))
}

// PUT /api/students/:id (admin)
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var req dto.UpdateStudentRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	if req.Department != nil {
		student.Department = *req.Department
	}
	if req.Course != nil {
		student.Course = *req.Course
	}
	if req.Semester != nil {
		student.Semester = *req.Semester
	}
	if req.Section != nil {
		student.Section = *req.Section
	}
	if req.Batch != nil {
		student.Batch = *req.Batch
	}
	if req.Category != nil {
		student.Category = *req.Category
	}
	if req.BloodGroup != nil {
		student.BloodGroup = req.BloodGroup
	}
	if req.ParentGuardianID != nil {
		student.ParentGuardianID = req.ParentGuardianID
	}
	if req.IsActive != nil {
		student.IsActive = *req.IsActive
	}

	if err := ctrl.DB.Save(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.JsonUpdated(c, "Student updated", dto.ToStudentResponse(student))
}

// DELETE /api/students/:id (admin)
//
// Soft-deletes the profile and deactivates the login account.
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&student).Error; err != nil {
			return err
		}
		return tx.Model(&usermodel.UserModel{}).
			Where("id = ?", student.UserID).
			Update("is_active", false).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	return helper.JsonDeleted(c, "Student deleted", fiber.Map{"id": id})
}

// GET /api/students/:id/academic-history
func (ctrl *StudentController) AcademicHistory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var student model.StudentModel
	if err := ctrl.DB.Select("id", "academic_history").First(&student, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	terms := []model.AcademicTerm{}
	if len(student.AcademicHistory) > 0 {
		if err := json.Unmarshal(student.AcademicHistory, &terms); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Corrupt academic history")
		}
	}
	return helper.JsonOK(c, "", terms)
}

// POST /api/students/:id/academic-history (admin)
func (ctrl *StudentController) AppendAcademicTerm(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var req dto.AppendAcademicTermRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	terms := []model.AcademicTerm{}
	if len(student.AcademicHistory) > 0 {
		if err := json.Unmarshal(student.AcademicHistory, &terms); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Corrupt academic history")
		}
	}
	terms = append(terms, model.AcademicTerm{
		Year:     req.Year,
		Semester: req.Semester,
		SGPA:     req.SGPA,
		CGPA:     req.CGPA,
		Remarks:  req.Remarks,
	})
	raw, err := json.Marshal(terms)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to encode academic history")
	}

	if err := ctrl.DB.Model(&student).
		Update("academic_history", datatypes.JSON(raw)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update academic history")
	}
	return helper.JsonUpdated(c, "Academic term recorded", terms)
}

// PUT /api/students/:id/subjects (admin)
//
// Replaces the student's subject enrollment with the given set.
func (ctrl *StudentController) EnrollSubjects(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var req dto.EnrollSubjectsRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	var subjects []subjectmodel.SubjectModel
	if err := ctrl.DB.Where("id IN ?", req.SubjectIDs).Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load subjects")
	}
	if len(subjects) != len(req.SubjectIDs) {
		return helper.JsonError(c, fiber.StatusBadRequest, "One or more subjects do not exist")
	}

	if err := ctrl.DB.Model(&student).Association("EnrolledSubjects").Replace(subjects); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update enrollment")
	}
	return helper.JsonUpdated(c, "Subjects enrolled", fiber.Map{"enrolled": len(subjects)})
}
