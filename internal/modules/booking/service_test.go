package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"courtbook/internal/domain"
	"courtbook/internal/repository"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateIfSlotFree(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil && b.ID == uuid.Nil {
		b.ID = uuid.New() // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) FindActiveOverlaps(ctx context.Context, venueID uuid.UUID, date time.Time, start, end string, excludeID *uuid.UUID) ([]domain.Booking, error) {
	args := m.Called(ctx, venueID, date, start, end, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus, payStatus domain.PaymentStatus, paymentID string) error {
	args := m.Called(ctx, id, from, to, payStatus, paymentID)
	return args.Error(0)
}

type MockVenueReader struct {
	mock.Mock
}

func (m *MockVenueReader) GetByID(ctx context.Context, id uuid.UUID) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func testVenue(id uuid.UUID, rate string) *domain.Venue {
	return &domain.Venue{
		ID:        id,
		GameType:  "Badminton",
		CourtName: "Court 1",
		Prices:    rate,
	}
}

func TestService_CreateBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueReader)

	venueID := uuid.New()
	userID := uuid.New()

	mockVenues.On("GetByID", mock.Anything, venueID).Return(testVenue(venueID, "750"), nil)
	mockBookings.On("CreateIfSlotFree", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockVenues)

	b, err := service.CreateBooking(context.Background(), userID, CreateBookingRequest{
		VenueID:         venueID,
		BookingDate:     "2026-09-15",
		StartTime:       "18:00",
		DurationMinutes: 90,
		TeamName:        "Net Ninjas",
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, "18:00", b.StartTime)
	assert.Equal(t, "19:30", b.EndTime)
	assert.Equal(t, "750.00", b.PricePerHour.StringFixed(2))
	assert.Equal(t, "1125.00", b.TotalAmount.StringFixed(2))
	assert.Equal(t, 2, b.NumberOfPlayers, "players default to 2 when omitted")
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
	mockBookings.AssertExpectations(t)
}

func TestService_CreateBooking_VenueNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueReader)

	venueID := uuid.New()
	mockVenues.On("GetByID", mock.Anything, venueID).Return(nil, repository.ErrNotFound)

	service := NewService(mockBookings, mockVenues)

	_, err := service.CreateBooking(context.Background(), uuid.New(), CreateBookingRequest{
		VenueID:         venueID,
		BookingDate:     "2026-09-15",
		StartTime:       "18:00",
		DurationMinutes: 60,
	})

	assert.ErrorIs(t, err, ErrVenueNotFound)
	mockBookings.AssertNotCalled(t, "CreateIfSlotFree", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_Validation(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockVenueReader))
	userID := uuid.New()

	cases := []struct {
		name string
		req  CreateBookingRequest
	}{
		{"zero duration", CreateBookingRequest{VenueID: uuid.New(), BookingDate: "2026-09-15", StartTime: "10:00"}},
		{"negative duration", CreateBookingRequest{VenueID: uuid.New(), BookingDate: "2026-09-15", StartTime: "10:00", DurationMinutes: -30}},
		{"bad date", CreateBookingRequest{VenueID: uuid.New(), BookingDate: "15/09/2026", StartTime: "10:00", DurationMinutes: 60}},
		{"bad time", CreateBookingRequest{VenueID: uuid.New(), BookingDate: "2026-09-15", StartTime: "10am", DurationMinutes: 60}},
		{"start at day boundary", CreateBookingRequest{VenueID: uuid.New(), BookingDate: "2026-09-15", StartTime: "24:00", DurationMinutes: 60}},
		{"crosses midnight", CreateBookingRequest{VenueID: uuid.New(), BookingDate: "2026-09-15", StartTime: "23:30", DurationMinutes: 60}},
		{"negative players", CreateBookingRequest{VenueID: uuid.New(), BookingDate: "2026-09-15", StartTime: "10:00", DurationMinutes: 60, NumberOfPlayers: -2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateBooking(context.Background(), userID, tc.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestService_CreateBooking_EndsAtMidnight(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueReader)

	venueID := uuid.New()
	mockVenues.On("GetByID", mock.Anything, venueID).Return(testVenue(venueID, "750"), nil)
	mockBookings.On("CreateIfSlotFree", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockVenues)

	b, err := service.CreateBooking(context.Background(), uuid.New(), CreateBookingRequest{
		VenueID:         venueID,
		BookingDate:     "2026-09-15",
		StartTime:       "23:00",
		DurationMinutes: 60,
	})

	assert.NoError(t, err)
	assert.Equal(t, "24:00", b.EndTime)
}

func TestService_CreateBooking_SlotTaken(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueReader)

	venueID := uuid.New()
	mockVenues.On("GetByID", mock.Anything, venueID).Return(testVenue(venueID, "750"), nil)
	mockBookings.On("CreateIfSlotFree", mock.Anything, mock.Anything).Return(repository.ErrSlotTaken)

	service := NewService(mockBookings, mockVenues)

	_, err := service.CreateBooking(context.Background(), uuid.New(), CreateBookingRequest{
		VenueID:         venueID,
		BookingDate:     "2026-09-15",
		StartTime:       "18:00",
		DurationMinutes: 60,
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestService_CreateBooking_RetriesSerializationFailure(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueReader)

	venueID := uuid.New()
	serErr := &pgconn.PgError{Code: "40001"}

	mockVenues.On("GetByID", mock.Anything, venueID).Return(testVenue(venueID, "750"), nil)
	mockBookings.On("CreateIfSlotFree", mock.Anything, mock.Anything).Return(serErr).Twice()
	mockBookings.On("CreateIfSlotFree", mock.Anything, mock.Anything).Return(nil).Once()

	service := NewService(mockBookings, mockVenues)

	b, err := service.CreateBooking(context.Background(), uuid.New(), CreateBookingRequest{
		VenueID:         venueID,
		BookingDate:     "2026-09-15",
		StartTime:       "18:00",
		DurationMinutes: 60,
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	mockBookings.AssertNumberOfCalls(t, "CreateIfSlotFree", 3)
}

func TestService_CreateBooking_RetriesExhausted(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueReader)

	venueID := uuid.New()
	serErr := &pgconn.PgError{Code: "40P01"}

	mockVenues.On("GetByID", mock.Anything, venueID).Return(testVenue(venueID, "750"), nil)
	mockBookings.On("CreateIfSlotFree", mock.Anything, mock.Anything).Return(serErr)

	service := NewService(mockBookings, mockVenues)

	_, err := service.CreateBooking(context.Background(), uuid.New(), CreateBookingRequest{
		VenueID:         venueID,
		BookingDate:     "2026-09-15",
		StartTime:       "18:00",
		DurationMinutes: 60,
	})

	// Never report success when the outcome is unknown.
	assert.ErrorIs(t, err, ErrSlotConflict)
	mockBookings.AssertNumberOfCalls(t, "CreateIfSlotFree", slotRetryAttempts)
}

func TestService_CheckSlotAvailable(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueReader)

	venueID := uuid.New()
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	mockVenues.On("GetByID", mock.Anything, venueID).Return(testVenue(venueID, "750"), nil)
	mockBookings.On("FindActiveOverlaps", mock.Anything, venueID, date, "18:00", "19:00", (*uuid.UUID)(nil)).
		Return([]domain.Booking{}, nil).Once()

	service := NewService(mockBookings, mockVenues)

	free, err := service.CheckSlotAvailable(context.Background(), venueID, "2026-09-15", "18:00", 60)
	assert.NoError(t, err)
	assert.True(t, free)

	mockBookings.On("FindActiveOverlaps", mock.Anything, venueID, date, "18:00", "19:00", (*uuid.UUID)(nil)).
		Return([]domain.Booking{{ID: uuid.New()}}, nil).Once()

	free, err = service.CheckSlotAvailable(context.Background(), venueID, "2026-09-15", "18:00", 60)
	assert.NoError(t, err)
	assert.False(t, free)
}

func TestService_RecordPaymentResult(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueReader)

	userID := uuid.New()
	bookingID := uuid.New()
	pending := &domain.Booking{ID: bookingID, UserID: userID, Status: domain.BookingPending, PaymentStatus: domain.PaymentPending}
	confirmed := &domain.Booking{ID: bookingID, UserID: userID, Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentPaid}

	mockBookings.On("GetByID", mock.Anything, bookingID).Return(pending, nil).Once()
	mockBookings.On("UpdateStatus", mock.Anything, bookingID, domain.BookingPending, domain.BookingConfirmed, domain.PaymentPaid, "pay_123").Return(nil)
	mockBookings.On("GetByID", mock.Anything, bookingID).Return(confirmed, nil).Once()

	service := NewService(mockBookings, mockVenues)

	b, err := service.RecordPaymentResult(context.Background(), userID, bookingID, true, "pay_123")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Equal(t, domain.PaymentPaid, b.PaymentStatus)
	mockBookings.AssertExpectations(t)
}

func TestService_RecordPaymentResult_FailureKeepsPending(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueReader)

	userID := uuid.New()
	bookingID := uuid.New()
	pending := &domain.Booking{ID: bookingID, UserID: userID, Status: domain.BookingPending, PaymentStatus: domain.PaymentPending}
	failed := &domain.Booking{ID: bookingID, UserID: userID, Status: domain.BookingPending, PaymentStatus: domain.PaymentFailed}

	mockBookings.On("GetByID", mock.Anything, bookingID).Return(pending, nil).Once()
	mockBookings.On("UpdateStatus", mock.Anything, bookingID, domain.BookingPending, domain.BookingPending, domain.PaymentFailed, "").Return(nil)
	mockBookings.On("GetByID", mock.Anything, bookingID).Return(failed, nil).Once()

	service := NewService(mockBookings, mockVenues)

	b, err := service.RecordPaymentResult(context.Background(), userID, bookingID, false, "")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingPending, b.Status, "slot stays held after a failed payment")
	assert.Equal(t, domain.PaymentFailed, b.PaymentStatus)
}

func TestService_RecordPaymentResult_LostRaceWithCancel(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueReader)

	userID := uuid.New()
	bookingID := uuid.New()
	// The read observes pending even though a concurrent cancel has
	// already committed; the conditional write detects the stale read.
	pending := &domain.Booking{ID: bookingID, UserID: userID, Status: domain.BookingPending, PaymentStatus: domain.PaymentPending}

	mockBookings.On("GetByID", mock.Anything, bookingID).Return(pending, nil).Once()
	mockBookings.On("UpdateStatus", mock.Anything, bookingID, domain.BookingPending, domain.BookingConfirmed, domain.PaymentPaid, "pay_456").Return(repository.ErrStaleStatus)

	service := NewService(mockBookings, mockVenues)

	b, err := service.RecordPaymentResult(context.Background(), userID, bookingID, true, "pay_456")

	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	mockBookings.AssertExpectations(t)
}

func TestService_CancelBooking_IllegalWhenAlreadyCancelled(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueReader)

	userID := uuid.New()
	bookingID := uuid.New()
	cancelled := &domain.Booking{ID: bookingID, UserID: userID, Status: domain.BookingCancelled}

	mockBookings.On("GetByID", mock.Anything, bookingID).Return(cancelled, nil)

	service := NewService(mockBookings, mockVenues)

	_, err := service.CancelBooking(context.Background(), userID, bookingID)

	assert.ErrorIs(t, err, ErrIllegalTransition)
	mockBookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_GetBooking_Forbidden(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueReader)

	bookingID := uuid.New()
	owner := uuid.New()
	other := uuid.New()

	mockBookings.On("GetByID", mock.Anything, bookingID).
		Return(&domain.Booking{ID: bookingID, UserID: owner}, nil)

	service := NewService(mockBookings, mockVenues)

	_, err := service.GetBooking(context.Background(), other, bookingID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = service.CancelBooking(context.Background(), other, bookingID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_GetBooking_NotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueReader)

	bookingID := uuid.New()
	mockBookings.On("GetByID", mock.Anything, bookingID).Return(nil, repository.ErrNotFound)

	service := NewService(mockBookings, mockVenues)

	_, err := service.GetBooking(context.Background(), uuid.New(), bookingID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// memoryBookingStore is a mutex-guarded in-memory BookingRepository used to
// exercise the concurrent create path without a database.
type memoryBookingStore struct {
	mu       sync.Mutex
	bookings []domain.Booking
}

func (s *memoryBookingStore) CreateIfSlotFree(ctx context.Context, b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		e := &s.bookings[i]
		if e.VenueID == b.VenueID && e.BookingDate.Equal(b.BookingDate) &&
			e.Status.Active() && Overlaps(e.StartTime, e.EndTime, b.StartTime, b.EndTime) {
			return repository.ErrSlotTaken
		}
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	s.bookings = append(s.bookings, *b)
	return nil
}

func (s *memoryBookingStore) FindActiveOverlaps(ctx context.Context, venueID uuid.UUID, date time.Time, start, end string, excludeID *uuid.UUID) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Booking
	for _, e := range s.bookings {
		if excludeID != nil && e.ID == *excludeID {
			continue
		}
		if e.VenueID == venueID && e.BookingDate.Equal(date) && e.Status.Active() && Overlaps(e.StartTime, e.EndTime, start, end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *memoryBookingStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memoryBookingStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Booking
	for _, e := range s.bookings {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *memoryBookingStore) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus, payStatus domain.PaymentStatus, paymentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			if s.bookings[i].Status != from {
				return repository.ErrStaleStatus
			}
			s.bookings[i].Status = to
			s.bookings[i].PaymentStatus = payStatus
			if paymentID != "" {
				s.bookings[i].PaymentID = paymentID
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func TestService_CreateBooking_ConcurrentSameSlot(t *testing.T) {
	store := &memoryBookingStore{}
	mockVenues := new(MockVenueReader)

	venueID := uuid.New()
	mockVenues.On("GetByID", mock.Anything, venueID).Return(testVenue(venueID, "750"), nil)

	service := NewService(store, mockVenues)

	req := CreateBookingRequest{
		VenueID:         venueID,
		BookingDate:     "2026-09-15",
		StartTime:       "18:00",
		DurationMinutes: 60,
	}

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.CreateBooking(context.Background(), uuid.New(), req)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var wins, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			assert.ErrorIs(t, err, ErrSlotConflict)
			conflicts++
		}
	}

	assert.Equal(t, 1, wins, "exactly one request may win the slot")
	assert.Equal(t, 1, conflicts)
	assert.Len(t, store.bookings, 1)
}

func TestService_CreateBooking_BackToBackSlots(t *testing.T) {
	store := &memoryBookingStore{}
	mockVenues := new(MockVenueReader)

	venueID := uuid.New()
	mockVenues.On("GetByID", mock.Anything, venueID).Return(testVenue(venueID, "750"), nil)

	service := NewService(store, mockVenues)

	_, err := service.CreateBooking(context.Background(), uuid.New(), CreateBookingRequest{
		VenueID: venueID, BookingDate: "2026-09-15", StartTime: "18:00", DurationMinutes: 60,
	})
	assert.NoError(t, err)

	// Ends exactly where the first begins and starts exactly where it ends.
	_, err = service.CreateBooking(context.Background(), uuid.New(), CreateBookingRequest{
		VenueID: venueID, BookingDate: "2026-09-15", StartTime: "17:00", DurationMinutes: 60,
	})
	assert.NoError(t, err)

	_, err = service.CreateBooking(context.Background(), uuid.New(), CreateBookingRequest{
		VenueID: venueID, BookingDate: "2026-09-15", StartTime: "19:00", DurationMinutes: 60,
	})
	assert.NoError(t, err)
}

func TestService_CreateBooking_CancelledSlotReusable(t *testing.T) {
	store := &memoryBookingStore{}
	mockVenues := new(MockVenueReader)

	venueID := uuid.New()
	userID := uuid.New()
	mockVenues.On("GetByID", mock.Anything, venueID).Return(testVenue(venueID, "750"), nil)

	service := NewService(store, mockVenues)

	req := CreateBookingRequest{
		VenueID: venueID, BookingDate: "2026-09-15", StartTime: "18:00", DurationMinutes: 60,
	}

	first, err := service.CreateBooking(context.Background(), userID, req)
	assert.NoError(t, err)

	_, err = service.CreateBooking(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)

	_, err = service.CancelBooking(context.Background(), userID, first.ID)
	assert.NoError(t, err)

	// The released slot is bookable again.
	_, err = service.CreateBooking(context.Background(), uuid.New(), req)
	assert.NoError(t, err)
}

func TestService_PaymentAfterCancel_NeverConfirms(t *testing.T) {
	store := &memoryBookingStore{}
	mockVenues := new(MockVenueReader)

	venueID := uuid.New()
	userID := uuid.New()
	mockVenues.On("GetByID", mock.Anything, venueID).Return(testVenue(venueID, "750"), nil)

	service := NewService(store, mockVenues)

	b, err := service.CreateBooking(context.Background(), userID, CreateBookingRequest{
		VenueID: venueID, BookingDate: "2026-09-15", StartTime: "18:00", DurationMinutes: 60,
	})
	assert.NoError(t, err)

	_, err = service.CancelBooking(context.Background(), userID, b.ID)
	assert.NoError(t, err)

	// A payment success landing after the cancel must not revive the
	// booking, whether it re-reads the current status or raced the cancel
	// with a stale pending read.
	_, err = service.RecordPaymentResult(context.Background(), userID, b.ID, true, "pay_789")
	assert.ErrorIs(t, err, ErrIllegalTransition)

	err = store.UpdateStatus(context.Background(), b.ID, domain.BookingPending, domain.BookingConfirmed, domain.PaymentPaid, "pay_789")
	assert.ErrorIs(t, err, repository.ErrStaleStatus)

	final, err := store.GetByID(context.Background(), b.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, final.Status)
}
