package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"swingbay/internal/domain"
)

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *locationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	var loc domain.Location
	tx := r.db.WithContext(ctx).First(&loc, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return &loc, nil
}

func (r *locationRepository) ListBays(ctx context.Context, locationID int64) ([]domain.Bay, error) {
	var rows []domain.Bay
	err := r.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("number").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
