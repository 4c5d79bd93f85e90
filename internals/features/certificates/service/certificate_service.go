package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	applicationModel "magangku_backend/internals/features/applications/model"
	model "magangku_backend/internals/features/certificates/model"
	internshipModel "magangku_backend/internals/features/internships/model"
)

/* =========================================================
   Generator sertifikat — implementasi default
   applications/service.CertificateGenerator.
========================================================= */

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(tx *gorm.DB, app *applicationModel.ApplicationModel, rating int) error {
	var internship internshipModel.InternshipModel
	if err := tx.First(&internship, "internship_id = ?", app.ApplicationInternshipID).Error; err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]interface{}{
		"position":   internship.InternshipTitle,
		"department": internship.InternshipDepartment,
		"start_date": app.ApplicationStartDate,
		"end_date":   app.ApplicationEndDate,
		"rating":     rating,
	})
	if err != nil {
		return err
	}

	cert := model.CertificateModel{
		CertificateApplicationID: app.ApplicationID,
		CertificateStudentID:     app.ApplicationStudentID,
		CertificateSerial:        newSerial(app.ApplicationID),
		CertificatePayload:       datatypes.JSON(payload),
	}
	return tx.Create(&cert).Error
}

// Serial: MAGANG-<tahun>-<8 hex pertama dari application id>
func newSerial(applicationID uuid.UUID) string {
	short := strings.ToUpper(strings.ReplaceAll(applicationID.String(), "-", ""))[:8]
	return fmt.Sprintf("MAGANG-%d-%s", time.Now().Year(), short)
}

/* =========================================================
   Employability recorder — upsert per student.
========================================================= */

type EmployabilityRecorder struct{}

func NewEmployabilityRecorder() *EmployabilityRecorder {
	return &EmployabilityRecorder{}
}

func (r *EmployabilityRecorder) Record(tx *gorm.DB, studentID uuid.UUID, applicationID uuid.UUID, rating int) error {
	rec := model.EmployabilityRecordModel{
		EmployabilityStudentID:     studentID,
		EmployabilityApplicationID: &applicationID,
		EmployabilityPlaced:        true,
		EmployabilityLastRating:    rating,
		EmployabilityCompletedN:    1,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "employability_student_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"employability_application_id": applicationID,
			"employability_placed":         true,
			"employability_last_rating":    rating,
			"employability_completed_n":    gorm.Expr("employability_records.employability_completed_n + 1"),
		}),
	}).Create(&rec).Error
}
