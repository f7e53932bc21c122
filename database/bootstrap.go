// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"coachboard/entities"
)

func OpenSQLite(path string) *gorm.DB {
	// TranslateError turns the driver's unique-constraint failures into
	// gorm.ErrDuplicatedKey, which the summary save path relies on to detect
	// a lost insert race.
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.DailyCheckIn{},
		&entities.ProgramAssignment{},
		&entities.WeeklySummary{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}
