package domain

import "time"

type BookingStatus string

const (
	BookingReserved  BookingStatus = "reserved"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingExpired   BookingStatus = "expired"
	BookingAbandoned BookingStatus = "abandoned"
)

// Booking is one purchased or held time slot on a bay. Start/end are stored
// as UTC instants and always fall on the same calendar day in the venue's
// local timezone (overnight spans are rejected at creation).
type Booking struct {
	ID         int64         `json:"id"`
	LocationID int64         `json:"location_id" validate:"required"`
	BayID      int64         `json:"bay_id" validate:"required"`
	UserID     *int64        `json:"user_id,omitempty"`
	StartTime  time.Time     `json:"start_time" validate:"required"`
	EndTime    time.Time     `json:"end_time" validate:"required"`
	PartySize  int           `json:"party_size"`
	Status     BookingStatus `json:"status"`

	// ExpiresAt is set only while Status is reserved; cancellation paths
	// also write now() here so the slot frees up for rebooking immediately.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	// TotalAmount is in minor currency units (cents). Mutable only while
	// the booking is still reserved.
	TotalAmount int64 `json:"total_amount"`

	CancellationReason string     `json:"cancellation_reason,omitempty" gorm:"type:text"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// Active reports whether the booking still occupies its slot.
func (b *Booking) Active() bool {
	return b.Status == BookingReserved || b.Status == BookingConfirmed
}
