package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"swingbay/internal/domain"
)

type holdRepository struct {
	db *gorm.DB
}

func NewHoldRepository(db *gorm.DB) *holdRepository {
	return &holdRepository{db: db}
}

// GetActiveForDate returns active holds for a location on a local calendar
// date, ordered by id. Encounter order is the only priority the conflict
// check applies.
func (r *holdRepository) GetActiveForDate(ctx context.Context, locationID int64, date string) ([]domain.CapacityHold, error) {
	var rows []domain.CapacityHold
	err := r.db.WithContext(ctx).
		Where("location_id = ? AND hold_date = ? AND status = ?", locationID, date, domain.HoldActive).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *holdRepository) GetByLeagueWeek(ctx context.Context, leagueID, weekID int64) (*domain.CapacityHold, error) {
	var h domain.CapacityHold
	tx := r.db.WithContext(ctx).
		Where("league_id = ? AND league_week_id = ?", leagueID, weekID).
		First(&h)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return &h, nil
}

func (r *holdRepository) UpdateTypeValue(ctx context.Context, holdID int64, holdType domain.HoldType, value int) error {
	return r.db.WithContext(ctx).
		Model(&domain.CapacityHold{}).
		Where("id = ?", holdID).
		Updates(map[string]any{
			"hold_type":  holdType,
			"hold_value": value,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *holdRepository) UpdateStatus(ctx context.Context, holdID int64, status domain.HoldStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.CapacityHold{}).
		Where("id = ?", holdID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}).Error
}

// CreateSeason inserts one hold row per occurrence date when a league
// season is scheduled.
func (r *holdRepository) CreateSeason(ctx context.Context, holds []domain.CapacityHold) error {
	if len(holds) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&holds).Error
}

// ReleaseForLeague permanently releases every hold of a cancelled league.
func (r *holdRepository) ReleaseForLeague(ctx context.Context, leagueID int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.CapacityHold{}).
		Where("league_id = ?", leagueID).
		Updates(map[string]any{
			"status":     domain.HoldReleased,
			"updated_at": time.Now().UTC(),
		}).Error
}
