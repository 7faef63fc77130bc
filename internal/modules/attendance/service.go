// Package attendance shrinks a league's per-week capacity hold down to what
// confirmed headcount actually needs. The adjustment is reduce-only: a hold
// is never grown past its originally configured size, and repeated runs with
// unchanged attendance are idempotent.
package attendance

import (
	"context"
	"errors"
	"math"

	"swingbay/internal/domain"
	"swingbay/internal/modules/capacity"
	"swingbay/internal/repository"
)

// Summary mirrors the week's attendance counts alongside the decision.
type Summary struct {
	Confirmed  int `json:"confirmed"`
	Declined   int `json:"declined"`
	NoResponse int `json:"no_response"`
}

type AdjustResult struct {
	Adjusted     bool    `json:"adjusted"`
	Suspended    bool    `json:"suspended"`
	BaysNeeded   int     `json:"bays_needed"`
	OriginalBays int     `json:"original_bays"`
	Attendance   Summary `json:"attendance"`
}

type Service struct {
	leagues   LeagueRepository
	holds     HoldRepository
	locations LocationRepository
}

func NewService(leagues LeagueRepository, holds HoldRepository, locations LocationRepository) *Service {
	return &Service{leagues: leagues, holds: holds, locations: locations}
}

// AdjustHold recomputes the week's hold from confirmed attendance:
// zero confirmed suspends the hold outright; otherwise the hold is rewritten
// to num_bays with the smaller of bays-needed and the season-configured
// reservation. baysNeeded >= the original reservation is a no-op.
func (s *Service) AdjustHold(ctx context.Context, leagueID, weekID int64) (*AdjustResult, error) {
	league, err := s.leagues.GetByID(ctx, leagueID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if league.PlayersPerBay <= 0 {
		// A zero divisor would produce a garbage bay count and overwrite
		// the hold with it; refuse the misconfigured league instead.
		return nil, ErrValidation
	}
	if _, err := s.leagues.GetWeek(ctx, weekID); err != nil {
		return nil, mapNotFound(err)
	}
	loc, err := s.locations.GetByID(ctx, league.LocationID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	hold, err := s.holds.GetByLeagueWeek(ctx, leagueID, weekID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	confirmed, declined, noResponse, err := s.leagues.AttendanceSummary(ctx, weekID)
	if err != nil {
		return nil, err
	}

	result := &AdjustResult{
		OriginalBays: capacity.ReservedBays(league.HoldType, league.HoldValue, loc.TotalBays),
		Attendance:   Summary{Confirmed: confirmed, Declined: declined, NoResponse: noResponse},
	}

	if confirmed == 0 {
		if err := s.holds.UpdateStatus(ctx, hold.ID, domain.HoldSuspended); err != nil {
			return nil, err
		}
		result.Adjusted = true
		result.Suspended = true
		result.BaysNeeded = 0
		return result, nil
	}

	baysNeeded := int(math.Ceil(float64(confirmed) / float64(league.PlayersPerBay)))
	result.BaysNeeded = baysNeeded

	if baysNeeded >= result.OriginalBays {
		// Never grow a hold past its configured size.
		result.Adjusted = false
		return result, nil
	}

	if err := s.holds.UpdateTypeValue(ctx, hold.ID, domain.HoldNumBays, baysNeeded); err != nil {
		return nil, err
	}
	result.Adjusted = true
	return result, nil
}

// ReleaseLeagueHolds permanently releases every hold a cancelled league
// still has, reopening its dates to public booking.
func (s *Service) ReleaseLeagueHolds(ctx context.Context, leagueID int64) error {
	if _, err := s.leagues.GetByID(ctx, leagueID); err != nil {
		return mapNotFound(err)
	}
	return s.holds.ReleaseForLeague(ctx, leagueID)
}

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
