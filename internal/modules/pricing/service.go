// Package pricing computes slot prices from a location's multi-rate table.
// The interval is walked in fixed 15-minute increments; each increment is
// priced by the named rate band that applies at its start instant in the
// venue's local timezone. All money values are int64 minor currency units
// (cents); nothing in this package ever handles fractional dollars.
package pricing

import (
	"context"
	"errors"
	"time"

	"swingbay/internal/domain"
	"swingbay/internal/repository"
)

const increment = 15 * time.Minute

// Segment is one run of adjacent increments billed under the same rate.
type Segment struct {
	RateName string    `json:"rate_name"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Amount   int64     `json:"amount"` // cents
}

// Quote is the priced result: Total always equals the sum of segment amounts.
type Quote struct {
	Total    int64     `json:"total"` // cents
	Currency string    `json:"currency"`
	Segments []Segment `json:"breakdown"`
}

type Service struct {
	rates     RateRepository
	locations LocationRepository
}

func NewService(rates RateRepository, locations LocationRepository) *Service {
	return &Service{rates: rates, locations: locations}
}

// CalculatePrice walks [startUTC, endUTC) in 15-minute steps. Each step
// costs hourly_rate/4 under the rate band selected by the step's local hour:
// Standard Rate from 9:00 through 1:59, Off-Peak Rate from 2:00 through
// 8:59. Adjacent steps under the same rate coalesce into one segment.
func (s *Service) CalculatePrice(ctx context.Context, locationID int64, startUTC, endUTC time.Time) (*Quote, error) {
	if !endUTC.After(startUTC) {
		return nil, ErrValidation
	}

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

	rules, err := s.rates.GetRatesForLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]domain.PricingRule, len(rules))
	for _, r := range rules {
		byName[r.Name] = r
	}

	quote := &Quote{Currency: "USD"}
	for cur := startUTC; cur.Before(endUTC); cur = cur.Add(increment) {
		name := rateNameForHour(cur.In(tz).Hour())
		rule, ok := byName[name]
		if !ok {
			return nil, ErrNoPricingRule
		}
		amount := rule.HourlyRate / 4

		quote.Total += amount
		n := len(quote.Segments)
		if n > 0 && quote.Segments[n-1].RateName == name {
			quote.Segments[n-1].End = cur.Add(increment)
			quote.Segments[n-1].Amount += amount
			continue
		}
		quote.Segments = append(quote.Segments, Segment{
			RateName: name,
			Start:    cur,
			End:      cur.Add(increment),
			Amount:   amount,
		})
	}

	return quote, nil
}

// rateNameForHour maps a local hour of day to the named band: Standard Rate
// covers 9:00am-1:59am, Off-Peak Rate covers 2:00am-8:59am.
func rateNameForHour(hour int) string {
	if hour >= 9 || hour < 2 {
		return domain.RateStandard
	}
	return domain.RateOffPeak
}
