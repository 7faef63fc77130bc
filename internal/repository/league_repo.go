package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"swingbay/internal/domain"
)

type leagueRepository struct {
	db *gorm.DB
}

func NewLeagueRepository(db *gorm.DB) *leagueRepository {
	return &leagueRepository{db: db}
}

func (r *leagueRepository) GetByID(ctx context.Context, id int64) (*domain.League, error) {
	var l domain.League
	tx := r.db.WithContext(ctx).First(&l, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return &l, nil
}

func (r *leagueRepository) GetWeek(ctx context.Context, weekID int64) (*domain.LeagueWeek, error) {
	var w domain.LeagueWeek
	tx := r.db.WithContext(ctx).First(&w, weekID)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return &w, nil
}

// AttendanceSummary aggregates the per-week response counts.
func (r *leagueRepository) AttendanceSummary(ctx context.Context, weekID int64) (confirmed, declined, noResponse int, err error) {
	type row struct {
		Status string
		N      int
	}
	var rows []row
	err = r.db.WithContext(ctx).
		Model(&domain.LeagueAttendance{}).
		Select("status, COUNT(1) AS n").
		Where("league_week_id = ?", weekID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return 0, 0, 0, err
	}
	for _, rw := range rows {
		switch domain.AttendanceStatus(rw.Status) {
		case domain.AttendanceConfirmed:
			confirmed = rw.N
		case domain.AttendanceDeclined:
			declined = rw.N
		default:
			noResponse += rw.N
		}
	}
	return confirmed, declined, noResponse, nil
}
