package capacity

import (
	"context"

	"swingbay/internal/domain"
)

// HoldRepository looks up the hold records the engine evaluates.
type HoldRepository interface {
	GetActiveForDate(ctx context.Context, locationID int64, date string) ([]domain.CapacityHold, error)
}

// LocationRepository resolves a location and its timezone.
type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
}
