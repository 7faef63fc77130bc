package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"swingbay/internal/domain"
)

// BookingQuery enumerates every supported booking filter upfront. Zero
// values mean "not filtered".
type BookingQuery struct {
	LocationID int64
	BayID      int64
	UserID     int64
	Statuses   []domain.BookingStatus
	From       time.Time
	To         time.Time
	Limit      int
	Offset     int
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *bookingRepository {
	return &bookingRepository{db: db}
}

// CreateAtomic inserts the booking only if no reserved or confirmed booking
// overlaps it on the same bay. The transactional count makes the check
// portable; on PostgreSQL the idx_no_double_booking exclusion constraint is
// the final arbiter under concurrency and its violation is mapped to
// ErrSlotTaken as well.
func (r *bookingRepository) CreateAtomic(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&domain.Booking{}).
			Where("bay_id = ?", b.BayID).
			Where("status IN ('reserved', 'confirmed')").
			Where("start_time < ? AND end_time > ?", b.EndTime, b.StartTime).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrSlotTaken
		}

		if err := tx.Create(b).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
				return ErrSlotTaken
			}
			return err
		}
		return nil
	})
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).First(&b, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return &b, nil
}

// GetByIDForUser returns ErrNotFound both for unknown ids and for bookings
// belonging to someone else, so callers cannot probe for existence.
func (r *bookingRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&b)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return &b, nil
}

// ConfirmIdempotent flips a reserved booking to confirmed and clears its
// expiry. It reports whether this call performed the flip, so re-delivered
// payment confirmations do not re-dispatch side effects.
func (r *bookingRepository) ConfirmIdempotent(ctx context.Context, id int64, now time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ? AND status = ?", id, domain.BookingReserved).
		Updates(map[string]any{
			"status":     domain.BookingConfirmed,
			"expires_at": nil,
			"updated_at": now,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *bookingRepository) MarkExpired(ctx context.Context, id int64, now time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ? AND status = ?", id, domain.BookingReserved).
		Updates(map[string]any{
			"status":     domain.BookingExpired,
			"updated_at": now,
		}).Error
}

// CancelCustomer transitions a confirmed booking to cancelled and writes
// expires_at = now so the slot frees immediately for rebooking.
func (r *bookingRepository) CancelCustomer(ctx context.Context, id int64, now time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       domain.BookingCancelled,
			"expires_at":   now,
			"cancelled_at": now,
			"updated_at":   now,
		}).Error
}

// Abandon transitions a reserved booking to abandoned (pre-payment customer
// cancellation).
func (r *bookingRepository) Abandon(ctx context.Context, id int64, now time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       domain.BookingAbandoned,
			"expires_at":   now,
			"cancelled_at": now,
			"updated_at":   now,
		}).Error
}

// CancelByEmployeeTx is the store's atomic employee-cancel primitive: it
// loads the booking, rejects already-cancelled rows, flips the status with
// the staff reason and writes the audit row in one transaction.
func (r *bookingRepository) CancelByEmployeeTx(ctx context.Context, id, employeeID int64, reason string, now time.Time) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if b.Status == domain.BookingCancelled {
			return ErrAlreadyCancelled
		}

		if err := tx.Model(&domain.Booking{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"status":              domain.BookingCancelled,
				"cancellation_reason": reason,
				"expires_at":          now,
				"cancelled_at":        now,
				"updated_at":          now,
			}).Error; err != nil {
			return err
		}

		audit := domain.CancellationAudit{
			BookingID: id,
			Actor:     domain.ActorEmployee,
			ActorID:   employeeID,
			Reason:    reason,
			CreatedAt: now,
		}
		if err := tx.Create(&audit).Error; err != nil {
			return err
		}

		b.Status = domain.BookingCancelled
		b.CancellationReason = reason
		b.ExpiresAt = &now
		b.CancelledAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CountActiveInWindow counts reserved and confirmed bookings overlapping
// [start, end) at the location. Used as the public-booking count fed to the
// capacity-hold conflict check.
func (r *bookingRepository) CountActiveInWindow(ctx context.Context, locationID int64, start, end time.Time) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("location_id = ?", locationID).
		Where("status IN ('reserved', 'confirmed')").
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&count).Error
	return int(count), err
}

func (r *bookingRepository) Find(ctx context.Context, q BookingQuery) ([]domain.Booking, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Booking{})

	if q.LocationID > 0 {
		tx = tx.Where("location_id = ?", q.LocationID)
	}
	if q.BayID > 0 {
		tx = tx.Where("bay_id = ?", q.BayID)
	}
	if q.UserID > 0 {
		tx = tx.Where("user_id = ?", q.UserID)
	}
	if len(q.Statuses) > 0 {
		tx = tx.Where("status IN ?", q.Statuses)
	}
	if !q.From.IsZero() {
		tx = tx.Where("start_time >= ?", q.From)
	}
	if !q.To.IsZero() {
		tx = tx.Where("start_time < ?", q.To)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	var rows []domain.Booking
	err := tx.Order("start_time DESC").Limit(limit).Offset(offset).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
