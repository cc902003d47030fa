package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/parents/dto"
	"campushub_backend/internals/features/academics/parents/model"
	studentmodel "campushub_backend/internals/features/academics/students/model"
	usermodel "campushub_backend/internals/features/users/auth/model"
	helper "campushub_backend/internals/helpers"
)

type ParentController struct {
	DB *gorm.DB
}

func NewParentController(db *gorm.DB) *ParentController {
	return &ParentController{DB: db}
}

// POST /api/parents (admin)
func (ctrl *ParentController) Create(c *fiber.Ctx) error {
	var req dto.CreateParentRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}
	if req.PreferredContactMethod == "" {
		req.PreferredContactMethod = "Phone"
	}

	user := usermodel.UserModel{
		Email:     req.Email,
		Role:      constants.RoleParent,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		IsActive:  true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	var parent model.ParentModel
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		parent = model.ParentModel{
			UserID:                 user.ID,
			Relation:               req.Relation,
			Occupation:             req.Occupation,
			AnnualIncome:           req.AnnualIncome,
			AlternatePhone:         req.AlternatePhone,
			PreferredContactMethod: req.PreferredContactMethod,
			IsActive:               true,
		}
		if err := tx.Create(&parent).Error; err != nil {
			return err
		}
		return tx.Model(&user).Update("parent_profile_id", parent.ID).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create parent")
	}

	return helper.JsonCreated(c, "Parent created", dto.ToParentResponse(parent))
}

// GET /api/parents (admin)
func (ctrl *ParentController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.ParentModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count parents")
	}

	var parents []model.ParentModel
	if err := q.Order(p.SortBy + " " + p.SortOrder).
		Offset(p.Offset()).Limit(p.Limit()).
		Find(&parents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch parents")
	}
	return helper.JsonList(c, "", dto.ToParentResponseList(parents), helper.BuildMeta(total, p))
}

// GET /api/parents/:id
func (ctrl *ParentController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parent id")
	}

	var parent model.ParentModel
	if err := ctrl.DB.First(&parent, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Parent not found")
	}

	var wards []studentmodel.StudentModel
	ctrl.DB.Where("parent_guardian_id = ?", parent.ID).Find(&wards)

	return helper.JsonOK(c, "", fiber.Map{
		"parent": dto.ToParentResponse(parent),
		"wards":  wards,
	})
}

// PUT /api/parents/:id (admin)
func (ctrl *ParentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parent id")
	}

	var req dto.UpdateParentRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var parent model.ParentModel
	if err := ctrl.DB.First(&parent, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Parent not found")
	}

	if req.Occupation != nil {
		parent.Occupation = req.Occupation
	}
	if req.AnnualIncome != nil {
		parent.AnnualIncome = req.AnnualIncome
	}
	if req.AlternatePhone != nil {
		parent.AlternatePhone = req.AlternatePhone
	}
	if req.PreferredContactMethod != nil {
		parent.PreferredContactMethod = *req.PreferredContactMethod
	}
	if req.IsActive != nil {
		parent.IsActive = *req.IsActive
	}

	if err := ctrl.DB.Save(&parent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update parent")
	}
	return helper.JsonUpdated(c, "Parent updated", dto.ToParentResponse(parent))
}

// PUT /api/parents/:id/link-student (admin)
func (ctrl *ParentController) LinkStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parent id")
	}

	var req dto.LinkStudentRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var parent model.ParentModel
	if err := ctrl.DB.First(&parent, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Parent not found")
	}

	res := ctrl.DB.Model(&studentmodel.StudentModel{}).
		Where("id = ?", req.StudentID).
		Update("parent_guardian_id", parent.ID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to link student")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.JsonUpdated(c, "Student linked to parent", fiber.Map{
		"parent_id":  parent.ID,
		"student_id": req.StudentID,
	})
}
