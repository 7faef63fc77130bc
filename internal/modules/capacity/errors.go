package capacity

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrInvalidLocation = errors.New("unknown location")
)
