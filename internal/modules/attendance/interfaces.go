package attendance

import (
	"context"

	"swingbay/internal/domain"
)

type LeagueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.League, error)
	GetWeek(ctx context.Context, weekID int64) (*domain.LeagueWeek, error)
	AttendanceSummary(ctx context.Context, weekID int64) (confirmed, declined, noResponse int, err error)
}

type HoldRepository interface {
	GetByLeagueWeek(ctx context.Context, leagueID, weekID int64) (*domain.CapacityHold, error)
	UpdateTypeValue(ctx context.Context, holdID int64, holdType domain.HoldType, value int) error
	UpdateStatus(ctx context.Context, holdID int64, status domain.HoldStatus) error
	ReleaseForLeague(ctx context.Context, leagueID int64) error
}

type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
}
