// Package booking owns the reservation lifecycle: hold, pay, confirm,
// expire and the cancellation/refund policy. Slot exclusivity itself is
// delegated to the store's atomic create; everything decided before and
// after that call lives here.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"swingbay/internal/domain"
	"swingbay/internal/pkg/clock"
	"swingbay/internal/repository"
)

// reserveTTL is how long an unpaid reservation keeps its slot.
const reserveTTL = 2 * time.Minute

// cancellationNotice is the minimum lead time for customer cancellation of
// a confirmed booking.
const cancellationNotice = 24 * time.Hour

type Service struct {
	store     BookingStore
	locations LocationRepository
	prices    PriceQuoter
	conflicts ConflictChecker
	payments  PaymentRepository
	gateway   RefundGateway
	notifs    Dispatcher
	push      Pusher
	audits    AuditWriter
	clock     clock.Clock
	loggerf   func(format string, args ...interface{})
}

func NewService(
	store BookingStore,
	locations LocationRepository,
	prices PriceQuoter,
	conflicts ConflictChecker,
	payments PaymentRepository,
	gateway RefundGateway,
	notifs Dispatcher,
	push Pusher,
	audits AuditWriter,
	clk clock.Clock,
	loggerf func(format string, args ...interface{}),
) *Service {
	if clk == nil {
		clk = clock.Real{}
	}
	if loggerf == nil {
		loggerf = log.Printf
	}
	return &Service{
		store:     store,
		locations: locations,
		prices:    prices,
		conflicts: conflicts,
		payments:  payments,
		gateway:   gateway,
		notifs:    notifs,
		push:      push,
		audits:    audits,
		clock:     clk,
		loggerf:   loggerf,
	}
}

// Reserve creates a time-limited hold on a bay. The capacity-hold check is
// an optimistic pre-filter; the store's atomic create is the final arbiter,
// so a race between the two is acceptable.
func (s *Service) Reserve(ctx context.Context, req ReserveRequest) (*ReserveResult, error) {
	loc, err := s.locations.GetByID(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidLocation
		}
		return nil, err
	}
	tz, err := time.LoadLocation(loc.Timezone)
	if err != nil {
		return nil, ErrInvalidLocation
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrValidation
	}
	startMin, err := minutesOfDay(req.StartLocal)
	if err != nil {
		return nil, ErrValidation
	}
	endMin, err := minutesOfDay(req.EndLocal)
	if err != nil {
		return nil, ErrValidation
	}
	if endMin <= startMin {
		// Overnight spans are rejected: a booking never crosses local midnight.
		return nil, ErrValidation
	}
	if req.BayID <= 0 {
		return nil, ErrValidation
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), startMin/60, startMin%60, 0, 0, tz).UTC()
	end := time.Date(day.Year(), day.Month(), day.Day(), endMin/60, endMin%60, 0, 0, tz).UTC()

	var total int64
	if req.TotalAmount != nil {
		if *req.TotalAmount < 0 {
			return nil, ErrValidation
		}
		total = *req.TotalAmount
	} else {
		quote, err := s.prices.CalculatePrice(ctx, req.LocationID, start, end)
		if err != nil {
			return nil, err
		}
		total = quote.Total
	}

	existing, err := s.store.CountActiveInWindow(ctx, req.LocationID, start, end)
	if err != nil {
		return nil, err
	}
	hold, err := s.conflicts.CheckConflict(ctx, req.LocationID, req.Date, req.StartLocal, req.EndLocal, loc.TotalBays, existing)
	if err != nil {
		return nil, err
	}
	if hold != nil {
		return nil, fmt.Errorf("%w: held for league %d", ErrSlotUnavailable, hold.LeagueID)
	}

	now := s.clock.Now()
	expiresAt := now.Add(reserveTTL)
	partySize := req.PartySize
	if partySize <= 0 {
		partySize = 1
	}

	b := &domain.Booking{
		LocationID:  req.LocationID,
		BayID:       req.BayID,
		UserID:      req.UserID,
		StartTime:   start,
		EndTime:     end,
		PartySize:   partySize,
		Status:      domain.BookingReserved,
		ExpiresAt:   &expiresAt,
		TotalAmount: total,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateAtomic(ctx, b); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	s.notifyChanged(b)

	return &ReserveResult{BookingID: b.ID, ExpiresAt: expiresAt, TotalAmount: total}, nil
}

// ConfirmPayment is invoked by the payment-gateway confirmation callback.
// Re-delivery is harmless: the status flip is idempotent in the store and
// side effects fire only on the call that actually performed it.
func (s *Service) ConfirmPayment(ctx context.Context, bookingID int64) error {
	b, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	now := s.clock.Now()
	if b.Status == domain.BookingReserved && b.ExpiresAt != nil && now.After(*b.ExpiresAt) {
		if err := s.store.MarkExpired(ctx, bookingID, now); err != nil {
			return err
		}
		return ErrReservationExpired
	}

	changed, err := s.store.ConfirmIdempotent(ctx, bookingID, now)
	if err != nil {
		return err
	}
	if changed {
		s.notifyChanged(b)
		return nil
	}

	switch b.Status {
	case domain.BookingConfirmed:
		// Re-delivered confirmation; already applied.
		return nil
	case domain.BookingReserved:
		// Lost a race with a concurrent confirmation of the same booking.
		cur, err := s.store.GetByID(ctx, bookingID)
		if err == nil && cur.Status == domain.BookingConfirmed {
			return nil
		}
		return ErrWrongStatus
	case domain.BookingExpired:
		return ErrReservationExpired
	case domain.BookingCancelled:
		return ErrAlreadyCancelled
	default:
		return ErrWrongStatus
	}
}

// ExpireIfDue lazily transitions an overdue reservation to expired. It
// reports whether this call performed the transition. Correctness does not
// depend on any background sweep: every payment-adjacent read re-checks.
func (s *Service) ExpireIfDue(ctx context.Context, bookingID int64) (bool, error) {
	b, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	if b.Status != domain.BookingReserved || b.ExpiresAt == nil {
		return false, nil
	}
	if !s.clock.Now().After(*b.ExpiresAt) {
		return false, nil
	}
	if err := s.store.MarkExpired(ctx, bookingID, s.clock.Now()); err != nil {
		return false, err
	}
	return true, nil
}

// CancelByCustomer cancels a confirmed booking. Legal only with at least 24
// hours of notice before the start time. The state transition commits
// first; refund, audit and notification follow and never roll it back.
func (s *Service) CancelByCustomer(ctx context.Context, bookingID, userID int64) error {
	b, err := s.store.GetByIDForUser(ctx, bookingID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if b.Status == domain.BookingCancelled {
		return ErrAlreadyCancelled
	}
	if b.Status != domain.BookingConfirmed {
		return ErrWrongStatus
	}

	now := s.clock.Now()
	remaining := b.StartTime.Sub(now)
	if remaining < cancellationNotice {
		return fmt.Errorf("%w: booking starts in %.1f hours, 24 required", ErrCancellationWindow, remaining.Hours())
	}

	if err := s.store.CancelCustomer(ctx, bookingID, now); err != nil {
		return err
	}

	refundID, refundAmount := s.refund(ctx, bookingID, false)

	s.writeAudit(ctx, &domain.CancellationAudit{
		BookingID:    bookingID,
		Actor:        domain.ActorCustomer,
		ActorID:      userID,
		RefundAmount: refundAmount,
		RefundID:     refundID,
		CreatedAt:    now,
	})
	s.dispatchCancellation(ctx, bookingID, "", string(domain.ActorCustomer), refundAmount, refundID != "")
	s.notifyChanged(b)
	return nil
}

// CancelReservedByCustomer abandons an unpaid reservation. Nothing was
// charged, so there is no refund; the audit entry records zero.
func (s *Service) CancelReservedByCustomer(ctx context.Context, bookingID, userID int64) error {
	b, err := s.store.GetByIDForUser(ctx, bookingID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if b.Status == domain.BookingCancelled || b.Status == domain.BookingAbandoned {
		return ErrAlreadyCancelled
	}
	if b.Status != domain.BookingReserved {
		return ErrWrongStatus
	}

	now := s.clock.Now()
	if err := s.store.Abandon(ctx, bookingID, now); err != nil {
		return err
	}

	s.writeAudit(ctx, &domain.CancellationAudit{
		BookingID: bookingID,
		Actor:     domain.ActorCustomer,
		ActorID:   userID,
		CreatedAt: now,
	})
	s.notifyChanged(b)
	return nil
}

// CancelByEmployee cancels through the store's atomic employee-cancel
// primitive, bypassing the 24-hour rule. A refund is attempted only for
// succeeded, non-temporary payment intents; a refund failure leaves the
// booking cancelled and is logged for manual reconciliation.
func (s *Service) CancelByEmployee(ctx context.Context, bookingID, employeeID int64, reason string) error {
	b, err := s.store.CancelByEmployeeTx(ctx, bookingID, employeeID, reason, s.clock.Now())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrNotFound
		case errors.Is(err, repository.ErrAlreadyCancelled):
			return ErrAlreadyCancelled
		default:
			return err
		}
	}

	refundID, refundAmount := s.refund(ctx, bookingID, true)

	s.dispatchCancellation(ctx, bookingID, reason, string(domain.ActorEmployee), refundAmount, refundID != "")
	s.notifyChanged(b)
	return nil
}

// GetBooking reads a booking, lazily expiring it when overdue so callers
// never observe a stale reserved status.
func (s *Service) GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	now := s.clock.Now()
	if b.Status == domain.BookingReserved && b.ExpiresAt != nil && now.After(*b.ExpiresAt) {
		if err := s.store.MarkExpired(ctx, bookingID, now); err != nil {
			return nil, err
		}
		b.Status = domain.BookingExpired
	}
	return b, nil
}

func (s *Service) ListBookings(ctx context.Context, q repository.BookingQuery) ([]domain.Booking, error) {
	return s.store.Find(ctx, q)
}

// refund attempts a gateway refund for the booking's succeeded payment, if
// any. Failures are logged and swallowed: the cancellation has already
// committed. skipTemporary guards staff-created intents that never carried
// a real charge.
func (s *Service) refund(ctx context.Context, bookingID int64, skipTemporary bool) (refundID string, amount int64) {
	p, err := s.payments.GetSucceededByBooking(ctx, bookingID)
	if err != nil {
		s.loggerf("level=error msg=payment lookup failed booking_id=%d err=%v", bookingID, err)
		return "", 0
	}
	if p == nil {
		// No payment record means nothing to refund; not an error.
		return "", 0
	}
	if skipTemporary && strings.HasPrefix(p.IntentRef, domain.TemporaryIntentPrefix) {
		return "", 0
	}
	if s.gateway == nil {
		s.loggerf("level=error msg=no refund gateway configured, needs manual reconciliation booking_id=%d payment_ref=%s", bookingID, p.IntentRef)
		return "", 0
	}

	rid, err := s.gateway.CreateRefund(ctx, p.IntentRef, p.Amount, map[string]string{
		"booking_id": strconv.FormatInt(bookingID, 10),
	})
	if err != nil {
		s.loggerf("level=error msg=refund failed, needs manual reconciliation booking_id=%d payment_ref=%s err=%v", bookingID, p.IntentRef, err)
		return "", 0
	}
	if err := s.payments.MarkRefunded(ctx, p.ID, rid); err != nil {
		s.loggerf("level=error msg=failed to record refund id booking_id=%d refund_id=%s err=%v", bookingID, rid, err)
	}
	return rid, p.Amount
}

func (s *Service) writeAudit(ctx context.Context, entry *domain.CancellationAudit) {
	if err := s.audits.Create(ctx, entry); err != nil {
		s.loggerf("level=error msg=failed to write cancellation audit booking_id=%d err=%v", entry.BookingID, err)
	}
}

func (s *Service) dispatchCancellation(ctx context.Context, bookingID int64, reason, initiator string, refundedAmount int64, refunded bool) {
	if s.notifs == nil {
		return
	}
	if err := s.notifs.SendCancellationNotification(ctx, bookingID, reason, initiator, refundedAmount, refunded); err != nil {
		s.loggerf("level=error msg=cancellation notification failed booking_id=%d err=%v", bookingID, err)
	}
}

func (s *Service) notifyChanged(b *domain.Booking) {
	if s.push != nil {
		s.push.NotifyBookingChanged(b.LocationID, b.BayID, b.ID)
	}
}

func minutesOfDay(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
