package dto

import (
	"strings"

	"github.com/google/uuid"

	userModel "magangku_backend/internals/features/users/model"
)

type RegisterRequest struct {
	FullName    string  `json:"full_name" validate:"required,min=3,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	Role        string  `json:"role" validate:"required,oneof=student mentor employer staff"`
	Department  *string `json:"department" validate:"omitempty,max=100"`
	CompanyName *string `json:"company_name" validate:"omitempty,max=150"`
}

func (r *RegisterRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	if r.Department != nil {
		d := strings.TrimSpace(*r.Department)
		if d == "" {
			r.Department = nil
		} else {
			r.Department = &d
		}
	}
	if r.CompanyName != nil {
		n := strings.TrimSpace(*r.CompanyName)
		if n == "" {
			r.CompanyName = nil
		} else {
			r.CompanyName = &n
		}
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Department  *string   `json:"department,omitempty"`
	CompanyName *string   `json:"company_name,omitempty"`
}

func ToUserResponse(u *userModel.UserModel) UserResponse {
	return UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		Role:        u.Role,
		Department:  u.Department,
		CompanyName: u.CompanyName,
	}
}
