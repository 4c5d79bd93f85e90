package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// InternshipModel merepresentasikan tabel internships (lowongan magang/placement).
type InternshipModel struct {
	InternshipID          uuid.UUID      `gorm:"column:internship_id;type:uuid;default:gen_random_uuid();primaryKey" json:"internship_id"`
	InternshipEmployerID  uuid.UUID      `gorm:"column:internship_employer_id;type:uuid;not null;index" json:"internship_employer_id"`
	InternshipTitle       string         `gorm:"column:internship_title;size:150;not null" json:"internship_title"`
	InternshipDescription string         `gorm:"column:internship_description;type:text;not null" json:"internship_description"`
	InternshipDepartment  string         `gorm:"column:internship_department;size:100;not null;index" json:"internship_department"`
	InternshipSkills      pq.StringArray `gorm:"column:internship_skills;type:text[]" json:"internship_skills"`
	InternshipStipendMin  int            `gorm:"column:internship_stipend_min;not null;default:0" json:"internship_stipend_min"`
	InternshipStipendMax  int            `gorm:"column:internship_stipend_max;not null;default:0" json:"internship_stipend_max"`
	InternshipLocation    *string        `gorm:"column:internship_location;size:150" json:"internship_location,omitempty"`
	InternshipMode        string         `gorm:"column:internship_mode;type:varchar(10);not null;default:'ONSITE'" json:"internship_mode"`
	InternshipDeadline    *time.Time     `gorm:"column:internship_deadline" json:"internship_deadline,omitempty"`
	InternshipIsVerified  bool           `gorm:"column:internship_is_verified;not null;default:false" json:"internship_is_verified"`
	InternshipIsActive    bool           `gorm:"column:internship_is_active;not null;default:true" json:"internship_is_active"`
	InternshipCreatedAt   time.Time      `gorm:"column:internship_created_at;autoCreateTime" json:"internship_created_at"`
	InternshipUpdatedAt   time.Time      `gorm:"column:internship_updated_at;autoUpdateTime" json:"internship_updated_at"`
	InternshipDeletedAt   gorm.DeletedAt `gorm:"column:internship_deleted_at;index" json:"internship_deleted_at,omitempty"`
}

func (InternshipModel) TableName() string {
	return "internships"
}
