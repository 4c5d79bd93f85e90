package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"magangku_backend/internals/configs"
	userModel "magangku_backend/internals/features/users/model"
)

func parseClaims(t *testing.T, token, secret string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tk *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("token tidak valid")
	}
	return claims
}

func TestCreateTokenPair(t *testing.T) {
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"

	dept := "Teknik Informatika"
	u := &userModel.UserModel{
		ID:         uuid.New(),
		Role:       "mentor",
		Department: &dept,
	}

	access, refresh, err := CreateTokenPair(u)
	if err != nil {
		t.Fatalf("CreateTokenPair: %v", err)
	}

	ac := parseClaims(t, access, configs.JWTSecret)
	if ac["user_id"] != u.ID.String() {
		t.Errorf("user_id = %v, want %s", ac["user_id"], u.ID)
	}
	if ac["role"] != "mentor" {
		t.Errorf("role = %v, want mentor", ac["role"])
	}
	if ac["department"] != dept {
		t.Errorf("department = %v, want %s", ac["department"], dept)
	}

	iat, _ := ac["iat"].(float64)
	exp, _ := ac["exp"].(float64)
	if exp-iat != accessTTLDefault.Seconds() {
		t.Errorf("access TTL = %v detik, want %v", exp-iat, accessTTLDefault.Seconds())
	}

	rc := parseClaims(t, refresh, configs.JWTRefreshSecret)
	if rc["user_id"] != u.ID.String() {
		t.Errorf("refresh user_id = %v, want %s", rc["user_id"], u.ID)
	}
	if _, hasRole := rc["role"]; hasRole {
		t.Error("refresh token tidak boleh membawa role")
	}

	riat, _ := rc["iat"].(float64)
	rexp, _ := rc["exp"].(float64)
	if rexp-riat != refreshTTLDefault.Seconds() {
		t.Errorf("refresh TTL = %v detik, want %v", rexp-riat, refreshTTLDefault.Seconds())
	}
}

func TestCreateTokenPairWithoutDepartment(t *testing.T) {
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"

	u := &userModel.UserModel{ID: uuid.New(), Role: "student"}
	access, _, err := CreateTokenPair(u)
	if err != nil {
		t.Fatalf("CreateTokenPair: %v", err)
	}

	ac := parseClaims(t, access, configs.JWTSecret)
	if _, ok := ac["department"]; ok {
		t.Error("department tidak boleh ada kalau user tanpa department")
	}
}
