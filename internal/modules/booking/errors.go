package booking

import "errors"

var (
	// ErrValidation: bad input shape, caller's fault, no retry.
	ErrValidation = errors.New("validation error")
	// ErrInvalidLocation: unknown location id.
	ErrInvalidLocation = errors.New("unknown location")
	// ErrSlotUnavailable: the store or a capacity hold rejected the window;
	// the caller may retry with a different slot.
	ErrSlotUnavailable = errors.New("slot unavailable")
	// ErrNotFound covers both unknown ids and bookings owned by someone
	// else, so existence never leaks.
	ErrNotFound = errors.New("booking not found")
	// ErrAlreadyCancelled: the booking reached cancelled before this call.
	ErrAlreadyCancelled = errors.New("booking already cancelled")
	// ErrWrongStatus: the operation is not legal for the booking's status.
	ErrWrongStatus = errors.New("operation not allowed for booking status")
	// ErrCancellationWindow: confirmed bookings need 24 hours of notice.
	ErrCancellationWindow = errors.New("cancellation window violation")
	// ErrReservationExpired: the unpaid reservation passed its expiry.
	ErrReservationExpired = errors.New("reservation expired")
)
