package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the cgo-free "sqlite" driver used for local development.
	_ "modernc.org/sqlite"

	"courtbook/internal/domain"
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

// Migrate creates the schema plus the partial unique index that backstops
// the slot-overlap check. The index only covers active bookings so a
// cancelled slot can be rebooked at the same start time.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Venue{},
		&domain.Booking{},
		&domain.OTPVerification{},
		&domain.City{},
		&domain.GameType{},
	); err != nil {
		return err
	}

	// Email and phone are optional login identities: a user may have one
	// or both. Uniqueness is enforced only for non-empty values.
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking
ON bookings (venue_id, booking_date, start_time)
WHERE status NOT IN ('cancelled', 'refunded')`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_users_email
ON users (email) WHERE email <> ''`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_users_phone
ON users (phone_number) WHERE phone_number <> ''`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
