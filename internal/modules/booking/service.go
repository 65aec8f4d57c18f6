package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"courtbook/internal/domain"
	"courtbook/internal/repository"
)

const (
	// Bounded retry on serialization failures. After the last attempt the
	// request is reported as a conflict: a loser must never be told it won.
	slotRetryAttempts = 3
	slotRetryBackoff  = 50 * time.Millisecond

	defaultPlayers = 2
)

type Service struct {
	bookings BookingRepository
	venues   VenueReader
	checker  *ConflictChecker
}

func NewService(bookings BookingRepository, venues VenueReader) *Service {
	return &Service{
		bookings: bookings,
		venues:   venues,
		checker:  NewConflictChecker(bookings),
	}
}

// CreateBooking validates the request, prices the slot and persists the
// booking atomically. The conflict check runs inside the same store
// transaction as the insert, so no partial write survives a lost race.
func (s *Service) CreateBooking(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*domain.Booking, error) {
	if req.DurationMinutes <= 0 {
		return nil, ErrValidation
	}

	players := req.NumberOfPlayers
	if players == 0 {
		players = defaultPlayers
	}
	if players < 1 {
		return nil, ErrValidation
	}

	date, err := time.ParseInLocation(dateLayout, req.BookingDate, time.UTC)
	if err != nil {
		return nil, ErrValidation
	}

	startMin, err := parseClock(req.StartTime)
	if err != nil || startMin >= minutesPerDay {
		return nil, ErrValidation
	}

	// The interval model is single-day: an end past 24:00 would spill into
	// the next calendar date and is rejected rather than split.
	endMin := startMin + req.DurationMinutes
	if endMin > minutesPerDay {
		return nil, ErrValidation
	}

	venue, err := s.venues.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	pricePerHour, totalAmount := ComputeCharge(venue.Prices, req.DurationMinutes)

	b := &domain.Booking{
		UserID:          userID,
		VenueID:         venue.ID,
		BookingDate:     date,
		StartTime:       formatClock(startMin),
		EndTime:         formatClock(endMin),
		DurationMinutes: req.DurationMinutes,
		NumberOfPlayers: players,
		TeamName:        req.TeamName,
		SpecialRequests: req.SpecialRequests,
		PricePerHour:    pricePerHour,
		TotalAmount:     totalAmount,
		Status:          domain.BookingPending,
		PaymentStatus:   domain.PaymentPending,
	}

	if err := s.reserve(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// reserve commits the booking, retrying transient serialization failures
// with backoff. Context expiry surfaces as ErrTimeout with nothing written.
func (s *Service) reserve(ctx context.Context, b *domain.Booking) error {
	for attempt := 1; ; attempt++ {
		err := s.bookings.CreateIfSlotFree(ctx, b)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, repository.ErrSlotTaken):
			return ErrSlotConflict
		case repository.IsSerializationFailure(err):
			if attempt >= slotRetryAttempts {
				return ErrSlotConflict
			}
			select {
			case <-ctx.Done():
				return ErrTimeout
			case <-time.After(time.Duration(attempt) * slotRetryBackoff):
			}
		case ctx.Err() != nil:
			return ErrTimeout
		default:
			return err
		}
	}
}

// CheckSlotAvailable is the read-only pre-check used by clients before
// submitting a booking. It is advisory: the authoritative check happens
// inside the create transaction.
func (s *Service) CheckSlotAvailable(ctx context.Context, venueID uuid.UUID, dateStr, startTime string, durationMinutes int) (bool, error) {
	if durationMinutes <= 0 {
		return false, ErrValidation
	}
	date, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
	if err != nil {
		return false, ErrValidation
	}
	startMin, err := parseClock(startTime)
	if err != nil || startMin >= minutesPerDay {
		return false, ErrValidation
	}
	endMin := startMin + durationMinutes
	if endMin > minutesPerDay {
		return false, ErrValidation
	}

	if _, err := s.venues.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrVenueNotFound
		}
		return false, err
	}

	conflict, err := s.checker.HasConflict(ctx, venueID, date, formatClock(startMin), formatClock(endMin), nil)
	if err != nil {
		return false, err
	}
	return !conflict, nil
}

// ListUserBookings returns the user's bookings, newest day first, latest
// start first within a day. Cancelled and refunded bookings stay visible.
func (s *Service) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *Service) GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*domain.Booking, error) {
	b, err := s.getOwned(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// RecordPaymentResult applies the outcome of an external payment attempt.
// It runs after the reservation transaction committed; no slot lock is
// held while the payment collaborator does its work.
func (s *Service) RecordPaymentResult(ctx context.Context, userID, bookingID uuid.UUID, succeeded bool, paymentID string) (*domain.Booking, error) {
	ev := EventPaymentSucceeded
	if !succeeded {
		ev = EventPaymentFailed
	}
	return s.applyEvent(ctx, userID, bookingID, ev, paymentID)
}

// CancelBooking releases the slot. Cancelled bookings are kept in history,
// never deleted.
func (s *Service) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) (*domain.Booking, error) {
	return s.applyEvent(ctx, userID, bookingID, EventCancel, "")
}

// RefundBooking moves a confirmed booking to refunded and releases the slot.
func (s *Service) RefundBooking(ctx context.Context, userID, bookingID uuid.UUID) (*domain.Booking, error) {
	return s.applyEvent(ctx, userID, bookingID, EventRefund, "")
}

func (s *Service) applyEvent(ctx context.Context, userID, bookingID uuid.UUID, ev Event, paymentID string) (*domain.Booking, error) {
	b, err := s.getOwned(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	newStatus, newPayStatus, err := Apply(b.Status, b.PaymentStatus, ev)
	if err != nil {
		return nil, err
	}

	// The write is conditional on the status the state machine just
	// validated. A concurrent transition invalidates this one rather than
	// being silently overwritten.
	if err := s.bookings.UpdateStatus(ctx, bookingID, b.Status, newStatus, newPayStatus, paymentID); err != nil {
		switch {
		case errors.Is(err, repository.ErrStaleStatus):
			return nil, ErrIllegalTransition
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.bookings.GetByID(ctx, bookingID)
}

func (s *Service) getOwned(ctx context.Context, userID, bookingID uuid.UUID) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	return b, nil
}
