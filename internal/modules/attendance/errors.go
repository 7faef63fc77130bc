package attendance

import "errors"

var (
	ErrNotFound   = errors.New("league, week or hold not found")
	ErrValidation = errors.New("validation error")
)
