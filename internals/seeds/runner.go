// file: internals/seeds/runner.go
package seeds

import (
	"log"

	"gorm.io/gorm"

	"timetable_backend/internals/seeds/school"
)

// RunAllSeeds populates baseline data. Safe to run repeatedly, every
// seeder upserts on its natural key.
func RunAllSeeds(db *gorm.DB) {
	log.Println("🌱 Running seeds...")
	if err := school.SeedAll(db); err != nil {
		log.Printf("[ERROR] seeding failed: %v", err)
		return
	}
	log.Println("🌱 Seeds complete")
}
