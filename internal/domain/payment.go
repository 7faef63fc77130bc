package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// TemporaryIntentPrefix marks payment records created by staff without a
// real charge behind them; such intents must never be refunded.
const TemporaryIntentPrefix = "temporary"

// Payment is the gateway-side record attached to a booking. Amount is in
// minor currency units (cents).
type Payment struct {
	ID        int64         `json:"id"`
	BookingID int64         `json:"booking_id"`
	IntentRef string        `json:"intent_ref"`
	Status    PaymentStatus `json:"status"`
	Amount    int64         `json:"amount"`
	RefundID  string        `json:"refund_id,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
