package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"swingbay/internal/database"
	"swingbay/internal/domain"
	jwtsvc "swingbay/internal/pkg/jwt"
	"swingbay/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "swingbay.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM cancellation_audits")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM league_attendances")
	db.Exec("DELETE FROM capacity_holds")
	db.Exec("DELETE FROM league_weeks")
	db.Exec("DELETE FROM leagues")
	db.Exec("DELETE FROM pricing_rules")
	db.Exec("DELETE FROM bays")
	db.Exec("DELETE FROM locations")

	// ================== LOCATION ==================
	log.Println("Creating location...")
	loc := domain.Location{
		Name:      "SwingBay Downtown",
		Timezone:  "America/Chicago",
		TotalBays: 10,
	}
	db.Create(&loc)

	for i := 1; i <= loc.TotalBays; i++ {
		db.Create(&domain.Bay{
			LocationID: loc.ID,
			Number:     i,
			Name:       fmt.Sprintf("Bay %d", i),
		})
	}

	// ================== PRICING ==================
	// Standard covers 09:00 through 02:00 next day; Off-Peak fills the rest.
	log.Println("Creating pricing rules...")
	db.Create(&domain.PricingRule{
		LocationID: loc.ID,
		Name:       domain.RateStandard,
		HourlyRate: 6000, // $60.00/hr
		StartTime:  "09:00",
		EndTime:    "02:00",
		DaysOfWeek: "mon,tue,wed,thu,fri,sat,sun",
	})
	db.Create(&domain.PricingRule{
		LocationID: loc.ID,
		Name:       domain.RateOffPeak,
		HourlyRate: 4000, // $40.00/hr
		StartTime:  "02:00",
		EndTime:    "09:00",
		DaysOfWeek: "mon,tue,wed,thu,fri,sat,sun",
	})

	// ================== LEAGUE ==================
	log.Println("Creating league and season holds...")
	league := domain.League{
		LocationID:    loc.ID,
		Name:          "Thursday Night League",
		PlayersPerBay: 4,
		HoldType:      domain.HoldNumBays,
		HoldValue:     5,
		Status:        domain.LeagueActive,
	}
	db.Create(&league)

	// Eight Thursdays starting next week, each with a week row and a
	// season-level hold carrying the standard 15-minute setup buffers.
	weekStart := nextWeekday(time.Now(), time.Thursday)
	seasonHolds := make([]domain.CapacityHold, 0, 8)
	for i := 0; i < 8; i++ {
		date := weekStart.AddDate(0, 0, 7*i).Format("2006-01-02")
		week := domain.LeagueWeek{
			LeagueID: league.ID,
			WeekDate: date,
		}
		db.Create(&week)

		seasonHolds = append(seasonHolds, domain.CapacityHold{
			LeagueID:         league.ID,
			LeagueWeekID:     &week.ID,
			LocationID:       loc.ID,
			HoldDate:         date,
			StartTime:        "18:00",
			EndTime:          "21:00",
			HoldType:         league.HoldType,
			HoldValue:        league.HoldValue,
			BufferBeforeMins: 15,
			BufferAfterMins:  15,
			Status:           domain.HoldActive,
		})

		// Responses for the first week only; later weeks stay unanswered.
		if i == 0 {
			for userID := int64(1); userID <= 20; userID++ {
				status := domain.AttendanceConfirmed
				if userID%5 == 0 {
					status = domain.AttendanceDeclined
				}
				db.Create(&domain.LeagueAttendance{
					LeagueWeekID: week.ID,
					UserID:       userID,
					Status:       status,
				})
			}
		}
	}

	holdRepo := repository.NewHoldRepository(db)
	if err := holdRepo.CreateSeason(context.Background(), seasonHolds); err != nil {
		log.Fatal("Season holds failed:", err)
	}

	// ================== SAMPLE BOOKING ==================
	log.Println("Creating sample booking...")
	tz, err := time.LoadLocation(loc.Timezone)
	if err != nil {
		log.Fatal(err)
	}
	tomorrow := time.Now().In(tz).AddDate(0, 0, 1)
	start := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 14, 0, 0, 0, tz).UTC()
	userID := int64(1)

	b := domain.Booking{
		LocationID:  loc.ID,
		BayID:       1,
		UserID:      &userID,
		StartTime:   start,
		EndTime:     start.Add(2 * time.Hour),
		PartySize:   2,
		Status:      domain.BookingConfirmed,
		TotalAmount: 12000,
	}
	db.Create(&b)

	db.Create(&domain.Payment{
		BookingID: b.ID,
		IntentRef: "pi_" + uuid.NewString(),
		Status:    domain.PaymentSucceeded,
		Amount:    b.TotalAmount,
	})

	// Dev tokens for poking the API; only when a secret is configured.
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		j := jwtsvc.New(secret, 24*time.Hour)
		if tok, err := j.GenerateToken(userID, "customer"); err == nil {
			log.Println("Customer token (user 1):", tok)
		}
		if tok, err := j.GenerateToken(100, "employee"); err == nil {
			log.Println("Employee token (user 100):", tok)
		}
	}

	log.Println("Seed complete.")
}

func nextWeekday(from time.Time, day time.Weekday) time.Time {
	d := int(day-from.Weekday()+7) % 7
	if d == 0 {
		d = 7
	}
	return from.AddDate(0, 0, d)
}
