package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"campushub_backend/internals/configs"
	"campushub_backend/internals/features/users/auth/model"
)

const tokenTTL = 7 * 24 * time.Hour

// GenerateToken issues the bearer token carried by every authenticated request.
func GenerateToken(u *model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"id":    u.ID.String(),
		"role":  u.Role,
		"email": u.Email,
		"exp":   time.Now().Add(tokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

func TokenExpiry() time.Time {
	return time.Now().Add(tokenTTL)
}
