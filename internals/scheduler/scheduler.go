// internals/scheduler/scheduler.go
package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	offerService "magangku_backend/internals/features/offers/service"
	userModel "magangku_backend/internals/features/users/model"
)

// Start memasang job berkala dan langsung menjalankan cron.
// Caller wajib memanggil Stop() saat shutdown.
func Start(db *gorm.DB) *cron.Cron {
	cr := cron.New()

	// sweep offer EXTENDED yang lewat tenggat
	if _, err := cr.AddFunc("@every 1h", func() {
		n, err := offerService.ExpireOverdue(db, time.Now())
		if err != nil {
			log.Printf("❌ [CRON] sweep offer gagal: %v", err)
			return
		}
		if n > 0 {
			log.Printf("⏱ [CRON] %d offer ditandai EXPIRED", n)
		}
	}); err != nil {
		log.Printf("❌ [CRON] gagal daftar job sweep offer: %v", err)
	}

	// bersihkan token blacklist yang sudah lewat masa berlakunya
	if _, err := cr.AddFunc("@daily", func() {
		res := db.Unscoped().Where("expired_at < ?", time.Now()).Delete(&userModel.TokenBlacklist{})
		if res.Error != nil {
			log.Printf("❌ [CRON] cleanup blacklist gagal: %v", res.Error)
			return
		}
		if res.RowsAffected > 0 {
			log.Printf("⏱ [CRON] %d token blacklist dihapus", res.RowsAffected)
		}
	}); err != nil {
		log.Printf("❌ [CRON] gagal daftar job cleanup blacklist: %v", err)
	}

	cr.Start()
	log.Println("✅ Scheduler aktif (sweep offer @every 1h, cleanup blacklist @daily)")
	return cr
}
