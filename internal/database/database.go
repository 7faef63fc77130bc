package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the cgo-free "sqlite" database/sql driver used below.
	_ "modernc.org/sqlite"

	"swingbay/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates or updates the schema. On PostgreSQL the no-double-booking
// guarantee additionally relies on the idx_no_double_booking exclusion
// constraint created here; SQLite installs only the tables and leans on the
// repository's transactional overlap count.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Location{},
		&domain.Bay{},
		&domain.Booking{},
		&domain.CapacityHold{},
		&domain.PricingRule{},
		&domain.League{},
		&domain.LeagueWeek{},
		&domain.LeagueAttendance{},
		&domain.Payment{},
		&domain.CancellationAudit{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() == "postgres" {
		db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
		db.Exec(`ALTER TABLE bookings ADD CONSTRAINT idx_no_double_booking
			EXCLUDE USING gist (
				bay_id WITH =,
				tstzrange(start_time, end_time) WITH &&
			) WHERE (status IN ('reserved', 'confirmed'))`)
	}

	return nil
}
