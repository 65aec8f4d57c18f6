package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"courtbook/internal/database"
	"courtbook/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "courtbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM otp_verifications")
	db.Exec("DELETE FROM venues")
	db.Exec("DELETE FROM game_types")
	db.Exec("DELETE FROM cities")
	db.Exec("DELETE FROM users")

	// ================== LOOKUPS ==================
	log.Println("Creating cities and game types...")
	cityNames := []string{"Mumbai", "Bengaluru", "Hyderabad", "Pune"}
	for _, name := range cityNames {
		db.Create(&domain.City{ID: uuid.New(), Name: name, IsActive: true})
	}
	db.Create(&domain.City{ID: uuid.New(), Name: "Old Town", IsActive: false})

	gameTypes := []domain.GameType{
		{ID: uuid.New(), Name: "Badminton", ShortCode: "BDM", Icon: "shuttlecock", IsActive: true},
		{ID: uuid.New(), Name: "Tennis", ShortCode: "TEN", Icon: "tennis-ball", IsActive: true},
		{ID: uuid.New(), Name: "Pickleball", ShortCode: "PKL", Icon: "paddle", IsActive: true},
		{ID: uuid.New(), Name: "Squash", ShortCode: "SQH", Icon: "racquet", IsActive: false},
	}
	for i := range gameTypes {
		db.Create(&gameTypes[i])
	}

	// ================== VENUES ==================
	log.Println("Creating venues...")
	venues := []domain.Venue{
		{
			ID:          uuid.New(),
			GameType:    "Badminton",
			CourtName:   "Smash Arena Court 1",
			Location:    "Andheri West, Mumbai",
			Prices:      "750",
			Description: "Indoor wooden court with professional lighting",
			Photos:      []string{"/static/venues/smash-arena-1.jpg"},
		},
		{
			ID:        uuid.New(),
			GameType:  "Badminton",
			CourtName: "Smash Arena Court 2",
			Location:  "Andheri West, Mumbai",
			Prices:    "750.50",
			Photos:    []string{"/static/venues/smash-arena-2.jpg"},
		},
		{
			ID:        uuid.New(),
			GameType:  "Tennis",
			CourtName: "Baseline Club Centre Court",
			Location:  "Koramangala, Bengaluru",
			Prices:    "1200",
		},
		{
			// Rate left unparseable on purpose: the engine falls back to
			// the default hourly rate for this one.
			ID:        uuid.New(),
			GameType:  "Pickleball",
			CourtName: "Dink District Court A",
			Location:  "Gachibowli, Hyderabad",
			Prices:    "contact us",
		},
	}
	for i := range venues {
		db.Create(&venues[i])
	}

	// ================== USERS ==================
	log.Println("Creating users...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("player123"), bcrypt.DefaultCost)
	users := make([]domain.User, 0, 3)
	for i := 0; i < 3; i++ {
		u := domain.User{
			ID:           uuid.New(),
			PhoneNumber:  fmt.Sprintf("98765432%02d", i+10),
			CountryCode:  "+91",
			Email:        fmt.Sprintf("player%d@courtbook.dev", i+1),
			PasswordHash: string(hash),
			FullName:     fmt.Sprintf("Demo Player %d", i+1),
			IsVerified:   true,
			IsActive:     true,
		}
		db.Create(&u)
		users = append(users, u)
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	today := time.Now().UTC().Truncate(24 * time.Hour)
	rate750 := decimal.RequireFromString("750.00")

	sample := []domain.Booking{
		{
			ID:              uuid.New(),
			UserID:          users[0].ID,
			VenueID:         venues[0].ID,
			BookingDate:     today.AddDate(0, 0, 1),
			StartTime:       "18:00",
			EndTime:         "19:00",
			DurationMinutes: 60,
			NumberOfPlayers: 2,
			PricePerHour:    rate750,
			TotalAmount:     rate750,
			Status:          domain.BookingConfirmed,
			PaymentStatus:   domain.PaymentPaid,
			PaymentID:       "pay_seed_0001",
		},
		{
			ID:              uuid.New(),
			UserID:          users[1].ID,
			VenueID:         venues[0].ID,
			BookingDate:     today.AddDate(0, 0, 1),
			StartTime:       "19:00",
			EndTime:         "20:30",
			DurationMinutes: 90,
			NumberOfPlayers: 4,
			TeamName:        "Net Ninjas",
			PricePerHour:    rate750,
			TotalAmount:     decimal.RequireFromString("1125.00"),
			Status:          domain.BookingPending,
			PaymentStatus:   domain.PaymentPending,
		},
		{
			ID:              uuid.New(),
			UserID:          users[0].ID,
			VenueID:         venues[2].ID,
			BookingDate:     today.AddDate(0, 0, -3),
			StartTime:       "07:00",
			EndTime:         "08:00",
			DurationMinutes: 60,
			NumberOfPlayers: 2,
			PricePerHour:    decimal.RequireFromString("1200.00"),
			TotalAmount:     decimal.RequireFromString("1200.00"),
			Status:          domain.BookingCancelled,
			PaymentStatus:   domain.PaymentPending,
		},
	}
	for i := range sample {
		db.Create(&sample[i])
	}

	log.Println("Seed completed.")
	log.Printf("Venues: %d, users: %d, bookings: %d", len(venues), len(users), len(sample))
	log.Println("Demo login: POST /api/v1/otp/send with phone 9876543210, then verify with the configured dummy code")
}
