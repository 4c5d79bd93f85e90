// internals/seeds/user_seed.go
package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	userModel "magangku_backend/internals/features/users/model"
)

func strPtr(s string) *string { return &s }

type seedUser struct {
	FullName    string
	Email       string
	Role        string
	Department  *string
	CompanyName *string
}

var defaultUsers = []seedUser{
	{FullName: "Admin Kampus", Email: "staff@magangku.id", Role: constants.RoleStaff},
	{FullName: "Budi Santoso", Email: "mentor.ti@magangku.id", Role: constants.RoleMentor, Department: strPtr("Teknik Informatika")},
	{FullName: "Sari Wulandari", Email: "mentor.si@magangku.id", Role: constants.RoleMentor, Department: strPtr("Sistem Informasi")},
	{FullName: "PT Maju Digital", Email: "hr@majudigital.co.id", Role: constants.RoleEmployer, CompanyName: strPtr("PT Maju Digital")},
	{FullName: "PT Solusi Data", Email: "hr@solusidata.co.id", Role: constants.RoleEmployer, CompanyName: strPtr("PT Solusi Data")},
	{FullName: "Andi Pratama", Email: "andi@student.magangku.id", Role: constants.RoleStudent, Department: strPtr("Teknik Informatika")},
	{FullName: "Dewi Lestari", Email: "dewi@student.magangku.id", Role: constants.RoleStudent, Department: strPtr("Sistem Informasi")},
}

// SeedUsers membuat akun default per role, password sama semua untuk dev.
func SeedUsers(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("magangku123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, su := range defaultUsers {
		var existing userModel.UserModel
		err := db.First(&existing, "email = ?", su.Email).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		u := userModel.UserModel{
			FullName:    su.FullName,
			Email:       su.Email,
			Password:    string(hash),
			Role:        su.Role,
			Department:  su.Department,
			CompanyName: su.CompanyName,
			IsActive:    true,
		}
		if err := db.Create(&u).Error; err != nil {
			return err
		}
		log.Printf("✅ [SEED] user %s (%s)", su.Email, su.Role)
	}
	return nil
}
