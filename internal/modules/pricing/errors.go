package pricing

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrInvalidLocation = errors.New("unknown location")
	ErrNoPricingRule   = errors.New("no pricing rule for rate")
)
