package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CertificateModel: satu sertifikat per lamaran yang COMPLETED.
type CertificateModel struct {
	CertificateID            uuid.UUID      `gorm:"column:certificate_id;type:uuid;default:gen_random_uuid();primaryKey" json:"certificate_id"`
	CertificateApplicationID uuid.UUID      `gorm:"column:certificate_application_id;type:uuid;not null;unique" json:"certificate_application_id"`
	CertificateStudentID     uuid.UUID      `gorm:"column:certificate_student_id;type:uuid;not null;index" json:"certificate_student_id"`
	CertificateSerial        string         `gorm:"column:certificate_serial;size:40;not null;unique" json:"certificate_serial"`
	CertificatePayload       datatypes.JSON `gorm:"column:certificate_payload" json:"certificate_payload"`
	CertificateIssuedAt      time.Time      `gorm:"column:certificate_issued_at;autoCreateTime" json:"certificate_issued_at"`
}

func (CertificateModel) TableName() string {
	return "certificates"
}

// EmployabilityRecordModel: snapshot employability per student,
// di-upsert setiap ada internship yang selesai.
type EmployabilityRecordModel struct {
	EmployabilityID            uuid.UUID  `gorm:"column:employability_id;type:uuid;default:gen_random_uuid();primaryKey" json:"employability_id"`
	EmployabilityStudentID     uuid.UUID  `gorm:"column:employability_student_id;type:uuid;not null;unique" json:"employability_student_id"`
	EmployabilityApplicationID *uuid.UUID `gorm:"column:employability_application_id;type:uuid" json:"employability_application_id,omitempty"`
	EmployabilityPlaced        bool       `gorm:"column:employability_placed;not null;default:false" json:"employability_placed"`
	EmployabilityLastRating    int        `gorm:"column:employability_last_rating;not null;default:0" json:"employability_last_rating"`
	EmployabilityCompletedN    int        `gorm:"column:employability_completed_n;not null;default:0" json:"employability_completed_n"`
	EmployabilityUpdatedAt     time.Time  `gorm:"column:employability_updated_at;autoUpdateTime" json:"employability_updated_at"`
}

func (EmployabilityRecordModel) TableName() string {
	return "employability_records"
}
