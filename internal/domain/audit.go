package domain

import "time"

type CancelActor string

const (
	ActorCustomer CancelActor = "customer"
	ActorEmployee CancelActor = "employee"
)

// CancellationAudit records who cancelled a booking and what, if anything,
// was refunded. RefundAmount is in minor currency units (cents); zero for
// pre-payment abandons.
type CancellationAudit struct {
	ID           int64       `json:"id"`
	BookingID    int64       `json:"booking_id"`
	Actor        CancelActor `json:"actor"`
	ActorID      int64       `json:"actor_id"`
	Reason       string      `json:"reason,omitempty" gorm:"type:text"`
	RefundAmount int64       `json:"refund_amount"`
	RefundID     string      `json:"refund_id,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}
