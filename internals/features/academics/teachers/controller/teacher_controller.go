package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	subjectmodel "campushub_backend/internals/features/academics/subjects/model"
	"campushub_backend/internals/features/academics/teachers/dto"
	"campushub_backend/internals/features/academics/teachers/model"
	usermodel "campushub_backend/internals/features/users/auth/model"
	helper "campushub_backend/internals/helpers"
)

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

// POST /api/teachers (admin)
func (ctrl *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	user := usermodel.UserModel{
		Email:     req.Email,
		Role:      constants.RoleTeacher,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		IsActive:  true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	var teacher model.TeacherModel
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		teacher = model.TeacherModel{
			UserID:         user.ID,
			EmployeeID:     req.EmployeeID,
			Department:     req.Department,
			Designation:    req.Designation,
			Specialization: req.Specialization,
			Qualification:  req.Qualification,
			Experience:     req.Experience,
			JoiningDate:    time.Now(),
			IsActive:       true,
		}
		if err := tx.Create(&teacher).Error; err != nil {
			return err
		}
		return tx.Model(&user).Update("teacher_profile_id", teacher.ID).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email or employee id already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}

	return helper.JsonCreated(c, "Teacher created", dto.ToTeacherResponse(teacher))
}

// GET /api/teachers (admin)
func (ctrl *TeacherController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "employee_id", "asc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.TeacherModel{})
	if v := c.Query("department"); v != "" {
		q = q.Where("department = ?", v)
	}
	if v := c.Query("designation"); v != "" {
		q = q.Where("designation = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count teachers")
	}

	var teachers []model.TeacherModel
	if err := q.Order(p.SortBy + " " + p.SortOrder).
		Offset(p.Offset()).Limit(p.Limit()).
		Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teachers")
	}
	return helper.JsonList(c, "", dto.ToTeacherResponseList(teachers), helper.BuildMeta(total, p))
}

// GET /api/teachers/by-department/:department
func (ctrl *TeacherController) ByDepartment(c *fiber.Ctx) error {
	department := c.Params("department")
	var teachers []model.TeacherModel
	if err := ctrl.DB.Where("department = ? AND is_active = true", department).
		Order("employee_id ASC").
		Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teachers")
	}
	return helper.JsonOK(c, "", dto.ToTeacherResponseList(teachers))
}

// GET /api/teachers/:id
func (ctrl *TeacherController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}

	var teacher model.TeacherModel
	if err := ctrl.DB.Preload("Subjects").First(&teacher, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"teacher":  dto.ToTeacherResponse(teacher),
		"subjects": teacher.Subjects,
	})
}

// PUT /api/teachers/:id (admin)
func (ctrl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}

	var req dto.UpdateTeacherRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var teacher model.TeacherModel
	if err := ctrl.DB.First(&teacher, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}

	if req.Department != nil {
		teacher.Department = *req.Department
	}
	if req.Designation != nil {
		teacher.Designation = *req.Designation
	}
	if req.Specialization != nil {
		teacher.Specialization = req.Specialization
	}
	if req.Qualification != nil {
		teacher.Qualification = *req.Qualification
	}
	if req.Experience != nil {
		teacher.Experience = *req.Experience
	}
	if req.Salary != nil {
		teacher.Salary = *req.Salary
	}
	if req.IsActive != nil {
		teacher.IsActive = *req.IsActive
	}

	if err := ctrl.DB.Save(&teacher).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update teacher")
	}
	return helper.JsonUpdated(c, "Teacher updated", dto.ToTeacherResponse(teacher))
}

// DELETE /api/teachers/:id (admin)
func (ctrl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}

	var teacher model.TeacherModel
	if err := ctrl.DB.First(&teacher, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&teacher).Error; err != nil {
			return err
		}
		return tx.Model(&usermodel.UserModel{}).
			Where("id = ?", teacher.UserID).
			Update("is_active", false).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	return helper.JsonDeleted(c, "Teacher deleted", fiber.Map{"id": id})
}

// PUT /api/teachers/:id/subjects (admin)
func (ctrl *TeacherController) AssignSubjects(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}

	var req dto.AssignSubjectsRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var teacher model.TeacherModel
	if err := ctrl.DB.First(&teacher, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}

	var subjects []subjectmodel.SubjectModel
	if err := ctrl.DB.Where("id IN ?", req.SubjectIDs).Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load subjects")
	}
	if len(subjects) != len(req.SubjectIDs) {
		return helper.JsonError(c, fiber.StatusBadRequest, "One or more subjects do not exist")
	}

	if err := ctrl.DB.Model(&teacher).Association("Subjects").Replace(subjects); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign subjects")
	}
	return helper.JsonUpdated(c, "Subjects assigned", fiber.Map{"assigned": len(subjects)})
}
