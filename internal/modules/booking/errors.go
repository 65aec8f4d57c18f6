package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrVenueNotFound     = errors.New("venue not found")
	ErrNotFound          = errors.New("booking not found")
	ErrSlotConflict      = errors.New("time slot already booked")
	ErrIllegalTransition = errors.New("illegal booking status transition")
	ErrTimeout           = errors.New("timed out reserving slot")
	ErrForbidden         = errors.New("forbidden")
)
