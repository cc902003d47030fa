package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/users/auth/dto"
	"campushub_backend/internals/features/users/auth/model"
	"campushub_backend/internals/features/users/auth/service"
	helper "campushub_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	user := req.ToModel()
	if err := user.SetPassword(req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := ctrl.DB.Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
		}
		log.Printf("[ERROR] register: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "Registered successfully", dto.ToUserResponse(user))
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		// Same message for unknown email and bad password
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !user.CheckPassword(req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Your account has been deactivated. Please contact admin.")
	}

	token, err := service.GenerateToken(&user)
	if err != nil {
		log.Printf("[ERROR] token sign: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	now := time.Now()
	user.LastLogin = &now
	if err := ctrl.DB.Model(&user).Update("last_login", now).Error; err != nil {
		log.Printf("[WARN] last_login update: %v", err)
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// GET /api/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "", dto.ToUserResponse(user))
}

// PUT /api/auth/profile
func (ctrl *AuthController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.ProfileImage != nil {
		user.ProfileImage = req.ProfileImage
	}
	if req.Address != nil {
		user.Address = *req.Address
	}

	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	return helper.JsonUpdated(c, "Profile updated", dto.ToUserResponse(user))
}

// PUT /api/auth/password
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ChangePasswordRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if !user.CheckPassword(req.CurrentPassword) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password is incorrect")
	}
	if err := user.SetPassword(req.NewPassword); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := ctrl.DB.Model(&user).Update("password", user.Password).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to change password")
	}
	return helper.JsonUpdated(c, "Password changed", nil)
}

// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)
	if token == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing token")
	}

	entry := model.TokenBlacklist{
		Token:     token,
		ExpiresAt: service.TokenExpiry(),
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		log.Printf("[ERROR] blacklist insert: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to log out")
	}
	return helper.JsonOK(c, "Logged out", nil)
}
