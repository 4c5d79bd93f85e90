// internals/seeds/runner.go
package seeds

import (
	"log"

	"gorm.io/gorm"
)

// RunAllSeeds menanam data awal untuk development: akun per role +
// beberapa lowongan contoh. Idempotent — aman dijalankan berulang.
func RunAllSeeds(db *gorm.DB) {
	if err := SeedUsers(db); err != nil {
		log.Printf("❌ [SEED] users gagal: %v", err)
		return
	}
	if err := SeedInternships(db); err != nil {
		log.Printf("❌ [SEED] internships gagal: %v", err)
		return
	}
	log.Println("✅ [SEED] selesai")
}
