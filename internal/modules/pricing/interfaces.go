package pricing

import (
	"context"

	"swingbay/internal/domain"
)

// RateRepository provides a location's rate table.
type RateRepository interface {
	GetRatesForLocation(ctx context.Context, locationID int64) ([]domain.PricingRule, error)
}

// LocationRepository resolves a location and its timezone.
type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
}
