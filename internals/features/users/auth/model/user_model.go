package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password     string         `gorm:"not null" json:"-"`
	Role         string         `gorm:"type:varchar(20);not null" json:"role"` // admin|teacher|student|parent
	FirstName    string         `gorm:"size:100;not null" json:"first_name"`
	LastName     string         `gorm:"size:100;not null" json:"last_name"`
	Phone        *string        `gorm:"size:20" json:"phone,omitempty"`
	ProfileImage *string        `json:"profile_image,omitempty"`
	Address      datatypes.JSON `gorm:"type:jsonb" json:"address,omitempty"` // {street,city,state,pincode}
	IsActive     bool           `gorm:"not null;default:true" json:"is_active"`
	LastLogin    *time.Time     `json:"last_login,omitempty"`

	// Role-profile references (at most one is set)
	StudentProfileID *uuid.UUID `gorm:"type:uuid" json:"student_profile_id,omitempty"`
	TeacherProfileID *uuid.UUID `gorm:"type:uuid" json:"teacher_profile_id,omitempty"`
	ParentProfileID  *uuid.UUID `gorm:"type:uuid" json:"parent_profile_id,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), 12)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

func (u *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
