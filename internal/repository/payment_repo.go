package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"swingbay/internal/domain"
)

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *paymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// GetSucceededByBooking returns the succeeded payment for a booking, or
// (nil, nil) when none exists; the absence of a payment record is not an
// error on cancellation paths.
func (r *paymentRepository) GetSucceededByBooking(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	var p domain.Payment
	tx := r.db.WithContext(ctx).
		Where("booking_id = ? AND status = ?", bookingID, domain.PaymentSucceeded).
		Order("id DESC").
		First(&p)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &p, nil
}

func (r *paymentRepository) MarkRefunded(ctx context.Context, paymentID int64, refundID string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("id = ?", paymentID).
		Updates(map[string]any{
			"status":     domain.PaymentRefunded,
			"refund_id":  refundID,
			"updated_at": time.Now().UTC(),
		}).Error
}
