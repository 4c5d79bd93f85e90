package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	applicationModel "magangku_backend/internals/features/applications/model"
	certificateModel "magangku_backend/internals/features/certificates/model"
	chatModel "magangku_backend/internals/features/chat/model"
	feedbackModel "magangku_backend/internals/features/feedback/model"
	internshipModel "magangku_backend/internals/features/internships/model"
	interviewModel "magangku_backend/internals/features/interviews/model"
	offerModel "magangku_backend/internals/features/offers/model"
	userModel "magangku_backend/internals/features/users/model"
)

// ConnectDB membuka koneksi Postgres dan mengembalikan handle-nya.
// Handle di-inject dari main ke semua controller (tidak ada global DB).
func ConnectDB() *gorm.DB {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=magangku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	log.Println("✅ DB connected.")
	return db
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AutoMigrate untuk dev/demo; produksi pakai migrasi SQL terpisah.
func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.TokenBlacklist{},
		&internshipModel.InternshipModel{},
		&applicationModel.ApplicationModel{},
		&applicationModel.ApplicationTrackingModel{},
		&interviewModel.InterviewScheduleModel{},
		&interviewModel.CalendarEventModel{},
		&offerModel.PlacementOfferModel{},
		&feedbackModel.FeedbackModel{},
		&chatModel.ChatRoomModel{},
		&chatModel.ChatMessageModel{},
		&certificateModel.CertificateModel{},
		&certificateModel.EmployabilityRecordModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}

	// Partial unique index: satu lamaran non-terminal per (student, internship).
	// Tidak bisa dinyatakan lewat tag gorm, jadi dibuat manual di sini.
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_applications_active_per_pair
		ON applications (application_student_id, application_internship_id)
		WHERE application_status NOT IN ('MENTOR_REJECTED','NOT_OFFERED','COMPLETED')
	`).Error; err != nil {
		log.Printf("[WARN] gagal membuat index uq_applications_active_per_pair: %v", err)
	}

	log.Println("✅ AutoMigrate selesai.")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
