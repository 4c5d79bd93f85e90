package constants

import "fmt"

// Role user sesuai kolom users.role
const (
	RoleStudent  = "student"
	RoleMentor   = "mentor"
	RoleEmployer = "employer"
	RoleStaff    = "staff"
)

// Template pesan error role
const (
	ErrOnlyStudentsCanAccess  = "❌ Hanya student yang boleh mengakses fitur %s."
	ErrOnlyMentorsCanAccess   = "❌ Hanya mentor yang boleh mengakses fitur %s."
	ErrOnlyEmployersCanAccess = "❌ Hanya employer atau staff yang boleh mengakses fitur %s."
	ErrOnlyStaffCanAccess     = "❌ Hanya staff yang boleh mengakses fitur %s."
)

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorMentor(feature string) string {
	return fmt.Sprintf(ErrOnlyMentorsCanAccess, feature)
}

func RoleErrorEmployer(feature string) string {
	return fmt.Sprintf(ErrOnlyEmployersCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleMentor,
		RoleEmployer,
		RoleStaff,
	}

	StudentOnly = []string{
		RoleStudent,
	}

	MentorOnly = []string{
		RoleMentor,
	}

	EmployerAndStaff = []string{
		RoleEmployer,
		RoleStaff,
	}

	StaffOnly = []string{
		RoleStaff,
	}
)

// IsKnownRole: token dengan role di luar daftar langsung ditolak middleware.
func IsKnownRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
