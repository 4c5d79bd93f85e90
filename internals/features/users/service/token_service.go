package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"magangku_backend/internals/configs"
	userModel "magangku_backend/internals/features/users/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

// CreateTokenPair membuat access + refresh token HS256.
// Klaim access memuat role & department supaya handler tidak perlu query users lagi.
func CreateTokenPair(u *userModel.UserModel) (access string, refresh string, err error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"role":    u.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(accessTTLDefault).Unix(),
	}
	if u.Department != nil {
		accessClaims["department"] = *u.Department
	}

	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(refreshTTLDefault).Unix(),
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}
