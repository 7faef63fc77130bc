package booking

import "time"

// ReserveRequest describes a slot in the venue's local wall-clock terms.
// TotalAmount, when set, is a caller-supplied discounted total in cents and
// skips the price calculator.
type ReserveRequest struct {
	LocationID  int64  `json:"location_id" binding:"required"`
	BayID       int64  `json:"bay_id" binding:"required"`
	UserID      *int64 `json:"user_id"`
	Date        string `json:"date" binding:"required"`        // "2006-01-02"
	StartLocal  string `json:"start_local" binding:"required"` // "15:04"
	EndLocal    string `json:"end_local" binding:"required"`   // "15:04"
	PartySize   int    `json:"party_size"`
	TotalAmount *int64 `json:"total_amount"` // cents, optional
}

type ReserveResult struct {
	BookingID   int64     `json:"booking_id"`
	ExpiresAt   time.Time `json:"expires_at"`
	TotalAmount int64     `json:"total_amount"` // cents
}

type CancelRequest struct {
	Reason string `json:"reason"`
}
