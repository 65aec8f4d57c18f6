package otp

import "errors"

var (
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrNoActiveCode    = errors.New("no active code for phone number")
	ErrTooManyAttempts = errors.New("too many failed attempts")
	ErrCodeMismatch    = errors.New("code mismatch")
)
