package repository

import (
	"context"

	"gorm.io/gorm"

	"swingbay/internal/domain"
)

type pricingRepository struct {
	db *gorm.DB
}

func NewPricingRepository(db *gorm.DB) *pricingRepository {
	return &pricingRepository{db: db}
}

func (r *pricingRepository) GetRatesForLocation(ctx context.Context, locationID int64) ([]domain.PricingRule, error) {
	var rows []domain.PricingRule
	err := r.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
