package capacity

import (
	"context"
	"errors"
	"time"

	"swingbay/internal/domain"
	"swingbay/internal/pkg/clock"
	"swingbay/internal/repository"
)

type Service struct {
	holds     HoldRepository
	locations LocationRepository
	clock     clock.Clock
}

func NewService(holds HoldRepository, locations LocationRepository, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.Real{}
	}
	return &Service{holds: holds, locations: locations, clock: clk}
}

// CheckConflict fetches the date's active holds and evaluates them against
// the requested local window. A nil hold means the request can proceed; the
// caller still goes through the store's atomic create, which remains the
// final arbiter under concurrency.
func (s *Service) CheckConflict(ctx context.Context, locationID int64, date, startLocal, endLocal string, totalBays, existingBookings int) (*domain.CapacityHold, error) {
	holds, err := s.holds.GetActiveForDate(ctx, locationID, date)
	if err != nil {
		return nil, err
	}
	return Evaluate(holds, startLocal, endLocal, totalBays, existingBookings)
}

// GetHoldsForDate lists a location's active holds on a local calendar date.
func (s *Service) GetHoldsForDate(ctx context.Context, locationID int64, date string) ([]domain.CapacityHold, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrValidation
	}
	return s.holds.GetActiveForDate(ctx, locationID, date)
}

// GetTodaysHold returns the first active hold for the location's current
// local date, or nil when today is unclaimed.
func (s *Service) GetTodaysHold(ctx context.Context, locationID int64) (*domain.CapacityHold, error) {
	loc, err := s.locations.GetByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidLocation
		}
		return nil, err
	}
	tz, err := time.LoadLocation(loc.Timezone)
	if err != nil {
		return nil, ErrInvalidLocation
	}

	today := s.clock.Now().In(tz).Format("2006-01-02")
	holds, err := s.holds.GetActiveForDate(ctx, locationID, today)
	if err != nil {
		return nil, err
	}
	if len(holds) == 0 {
		return nil, nil
	}
	return &holds[0], nil
}
