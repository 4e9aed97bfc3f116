package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"office-leasing-backend/models"
)

// GenerateAccessToken issues an HS256 token carrying the user's identity
// and role claims. Middleware on protected routes rebuilds the acting
// user from these claims.
func GenerateAccessToken(user *models.User, secret string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"name":     user.FullName,
		"role":     string(user.Role),
		"sup":      user.IsSuperuser,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
