package booking

import (
	"context"
	"time"

	"swingbay/internal/domain"
	"swingbay/internal/modules/pricing"
	"swingbay/internal/repository"
)

// BookingStore is the external transactional store. CreateAtomic is the
// single source of truth for "no two reservations win the same
// bay-timeslot"; the lifecycle manager never pre-reserves in memory.
type BookingStore interface {
	CreateAtomic(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Booking, error)
	ConfirmIdempotent(ctx context.Context, id int64, now time.Time) (bool, error)
	MarkExpired(ctx context.Context, id int64, now time.Time) error
	CancelCustomer(ctx context.Context, id int64, now time.Time) error
	Abandon(ctx context.Context, id int64, now time.Time) error
	CancelByEmployeeTx(ctx context.Context, id, employeeID int64, reason string, now time.Time) (*domain.Booking, error)
	CountActiveInWindow(ctx context.Context, locationID int64, start, end time.Time) (int, error)
	Find(ctx context.Context, q repository.BookingQuery) ([]domain.Booking, error)
}

type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
}

// PriceQuoter is the pricing calculator collaborator.
type PriceQuoter interface {
	CalculatePrice(ctx context.Context, locationID int64, startUTC, endUTC time.Time) (*pricing.Quote, error)
}

// ConflictChecker is the capacity-hold engine collaborator. It is an
// optimistic pre-filter only; the store's atomic create stays the arbiter.
type ConflictChecker interface {
	CheckConflict(ctx context.Context, locationID int64, date, startLocal, endLocal string, totalBays, existingBookings int) (*domain.CapacityHold, error)
}

type PaymentRepository interface {
	GetSucceededByBooking(ctx context.Context, bookingID int64) (*domain.Payment, error)
	MarkRefunded(ctx context.Context, paymentID int64, refundID string) error
}

// RefundGateway mirrors payment.Gateway; declared here so the lifecycle
// manager depends only on what it calls.
type RefundGateway interface {
	CreateRefund(ctx context.Context, paymentRef string, amount int64, metadata map[string]string) (string, error)
}

// Dispatcher sends cancellation notifications. Fire-and-forget: errors are
// logged by the service, never surfaced to the caller.
type Dispatcher interface {
	SendCancellationNotification(ctx context.Context, bookingID int64, reason, initiator string, refundedAmount int64, refunded bool) error
}

// Pusher is the best-effort realtime refresh signal.
type Pusher interface {
	NotifyBookingChanged(locationID, bayID, bookingID int64)
}

type AuditWriter interface {
	Create(ctx context.Context, entry *domain.CancellationAudit) error
}
