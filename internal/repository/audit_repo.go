package repository

import (
	"context"

	"gorm.io/gorm"

	"swingbay/internal/domain"
)

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *auditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, entry *domain.CancellationAudit) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditRepository) GetByBooking(ctx context.Context, bookingID int64) ([]domain.CancellationAudit, error) {
	var rows []domain.CancellationAudit
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
