package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"magangku_backend/internals/features/users/dto"
	userModel "magangku_backend/internals/features/users/model"
	helper "magangku_backend/internals/helpers"
)

var validate = validator.New()

/* ==========================
   REGISTER
========================== */
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("[ERROR] Gagal hash password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses pendaftaran")
	}

	usr := userModel.UserModel{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    string(hashed),
		Role:        req.Role,
		Department:  req.Department,
		CompanyName: req.CompanyName,
	}
	usr.SetDefaultValues()

	if err := db.Create(&usr).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Println("[ERROR] Gagal membuat user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "Pendaftaran berhasil", dto.ToUserResponse(&usr))
}

/* ==========================
   LOGIN
========================== */
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var usr userModel.UserModel
	if err := db.First(&usr, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// pesan sengaja sama dengan password salah
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}
	if !usr.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	access, refresh, err := CreateTokenPair(&usr)
	if err != nil {
		log.Println("[ERROR] Gagal membuat token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.ToUserResponse(&usr),
	})
}

/* ==========================
   LOGOUT → token masuk blacklist
========================== */
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString := helper.GetRawAccessToken(c)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token tidak ditemukan")
	}

	entry := userModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: time.Now().Add(accessTTLDefault),
	}
	if err := db.Create(&entry).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			// sudah di-blacklist, anggap sukses
			return helper.JsonOK(c, "Logout berhasil", nil)
		}
		log.Println("[ERROR] Gagal blacklist token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	return helper.JsonOK(c, "Logout berhasil", nil)
}
