package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"campushub_backend/internals/features/users/auth/model"
)

type RegisterRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=6"`
	Role      string  `json:"role" validate:"required,oneof=admin teacher student parent"`
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,len=10,numeric"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	FirstName    *string         `json:"first_name,omitempty"`
	LastName     *string         `json:"last_name,omitempty"`
	Phone        *string         `json:"phone,omitempty" validate:"omitempty,len=10,numeric"`
	ProfileImage *string         `json:"profile_image,omitempty"`
	Address      *datatypes.JSON `json:"address,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

type UserResponse struct {
	ID           uuid.UUID      `json:"id"`
	Email        string         `json:"email"`
	Role         string         `json:"role"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	FullName     string         `json:"full_name"`
	Phone        *string        `json:"phone,omitempty"`
	ProfileImage *string        `json:"profile_image,omitempty"`
	Address      datatypes.JSON `json:"address,omitempty"`
	IsActive     bool           `json:"is_active"`
	LastLogin    *time.Time     `json:"last_login,omitempty"`

	StudentProfileID *uuid.UUID `json:"student_profile_id,omitempty"`
	TeacherProfileID *uuid.UUID `json:"teacher_profile_id,omitempty"`
	ParentProfileID  *uuid.UUID `json:"parent_profile_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func (r RegisterRequest) ToModel() model.UserModel {
	return model.UserModel{
		Email:     r.Email,
		Role:      r.Role,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
	}
}

func ToUserResponse(u model.UserModel) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		Role:             u.Role,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		FullName:         u.FullName(),
		Phone:            u.Phone,
		ProfileImage:     u.ProfileImage,
		Address:          u.Address,
		IsActive:         u.IsActive,
		LastLogin:        u.LastLogin,
		StudentProfileID: u.StudentProfileID,
		TeacherProfileID: u.TeacherProfileID,
		ParentProfileID:  u.ParentProfileID,
		CreatedAt:        u.CreatedAt,
	}
}
