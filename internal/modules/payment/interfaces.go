package payment

import "context"

// Gateway issues refunds against a previously captured charge. Callers on
// cancellation paths treat failures as non-fatal once the booking's state
// transition has committed: the error is logged for manual reconciliation,
// never propagated.
type Gateway interface {
	CreateRefund(ctx context.Context, paymentRef string, amount int64, metadata map[string]string) (refundID string, err error)
}
