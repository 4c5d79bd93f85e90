package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users.
// Department diisi untuk student & mentor (gating approval per jurusan),
// CompanyName untuk employer.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName    string    `gorm:"size:100;not null" json:"full_name" validate:"required,min=3,max=100"`
	Email       string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password    string    `gorm:"not null" json:"-" validate:"required,min=8"`
	Role        string    `gorm:"type:varchar(20);not null;default:'student'" json:"role" validate:"omitempty,oneof=student mentor employer staff"`
	Department  *string   `gorm:"size:100" json:"department,omitempty"`
	CompanyName *string   `gorm:"size:150" json:"company_name,omitempty"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "student"
	}
}
