package repository

import "errors"

var (
	ErrNotFound         = errors.New("record not found")
	ErrSlotTaken        = errors.New("time slot is already booked")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)
