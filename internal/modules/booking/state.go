package booking

import "courtbook/internal/domain"

// Event is a lifecycle trigger applied to a booking. Status is the
// authoritative field; payment status follows it as a secondary attribute.
type Event string

const (
	EventPaymentSucceeded Event = "payment_succeeded"
	EventPaymentFailed    Event = "payment_failed"
	EventCancel           Event = "cancel"
	EventRefund           Event = "refund"
)

// CanTransition reports whether ev is legal for a booking in status s.
func CanTransition(s domain.BookingStatus, ev Event) bool {
	switch ev {
	case EventPaymentSucceeded, EventPaymentFailed:
		return s == domain.BookingPending
	case EventCancel:
		return s == domain.BookingPending || s == domain.BookingConfirmed
	case EventRefund:
		return s == domain.BookingConfirmed
	}
	return false
}

// Apply returns the status pair after ev. Illegal transitions are rejected,
// never silently ignored.
//
// A failed payment keeps the booking pending and the slot held; only cancel
// or refund release a slot.
func Apply(s domain.BookingStatus, p domain.PaymentStatus, ev Event) (domain.BookingStatus, domain.PaymentStatus, error) {
	if !CanTransition(s, ev) {
		return s, p, ErrIllegalTransition
	}

	switch ev {
	case EventPaymentSucceeded:
		return domain.BookingConfirmed, domain.PaymentPaid, nil
	case EventPaymentFailed:
		return domain.BookingPending, domain.PaymentFailed, nil
	case EventCancel:
		return domain.BookingCancelled, p, nil
	case EventRefund:
		return domain.BookingRefunded, domain.PaymentRefunded, nil
	}
	return s, p, ErrIllegalTransition
}
