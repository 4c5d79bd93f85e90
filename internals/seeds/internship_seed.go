// internals/seeds/internship_seed.go
package seeds

import (
	"log"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	internshipModel "magangku_backend/internals/features/internships/model"
	userModel "magangku_backend/internals/features/users/model"
)

type seedInternship struct {
	EmployerEmail string
	Title         string
	Description   string
	Department    string
	Skills        []string
	StipendMin    int
	StipendMax    int
	Location      string
	Mode          string
}

var defaultInternships = []seedInternship{
	{
		EmployerEmail: "hr@majudigital.co.id",
		Title:         "Backend Developer Intern",
		Description:   "Membangun REST API dengan Go dan PostgreSQL untuk produk internal.",
		Department:    "Teknik Informatika",
		Skills:        []string{"go", "postgresql", "rest-api"},
		StipendMin:    1500000,
		StipendMax:    2500000,
		Location:      "Jakarta",
		Mode:          "HYBRID",
	},
	{
		EmployerEmail: "hr@majudigital.co.id",
		Title:         "Mobile Developer Intern",
		Description:   "Pengembangan aplikasi Flutter untuk pelanggan retail.",
		Department:    "Teknik Informatika",
		Skills:        []string{"flutter", "dart", "firebase"},
		StipendMin:    1000000,
		StipendMax:    2000000,
		Location:      "Jakarta",
		Mode:          "ONSITE",
	},
	{
		EmployerEmail: "hr@solusidata.co.id",
		Title:         "Data Analyst Intern",
		Description:   "Analisis data penjualan, pembuatan dashboard, dan query SQL.",
		Department:    "Sistem Informasi",
		Skills:        []string{"sql", "python", "tableau"},
		StipendMin:    1200000,
		StipendMax:    1800000,
		Location:      "Bandung",
		Mode:          "REMOTE",
	},
}

// SeedInternships menanam lowongan contoh, langsung verified + active
// supaya bisa dilamar tanpa langkah staff.
func SeedInternships(db *gorm.DB) error {
	deadline := time.Now().AddDate(0, 3, 0)

	for _, si := range defaultInternships {
		var employer userModel.UserModel
		if err := db.First(&employer, "email = ? AND role = ?", si.EmployerEmail, constants.RoleEmployer).Error; err != nil {
			return err
		}

		var cnt int64
		if err := db.Model(&internshipModel.InternshipModel{}).
			Where("internship_employer_id = ? AND internship_title = ?", employer.ID, si.Title).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			continue
		}

		loc := si.Location
		m := internshipModel.InternshipModel{
			InternshipEmployerID:  employer.ID,
			InternshipTitle:       si.Title,
			InternshipDescription: si.Description,
			InternshipDepartment:  si.Department,
			InternshipSkills:      pq.StringArray(si.Skills),
			InternshipStipendMin:  si.StipendMin,
			InternshipStipendMax:  si.StipendMax,
			InternshipLocation:    &loc,
			InternshipMode:        si.Mode,
			InternshipDeadline:    &deadline,
			InternshipIsVerified:  true,
			InternshipIsActive:    true,
		}
		if err := db.Create(&m).Error; err != nil {
			return err
		}
		log.Printf("✅ [SEED] internship %q (%s)", si.Title, si.EmployerEmail)
	}
	return nil
}
