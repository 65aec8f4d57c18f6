package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"courtbook/internal/domain"
)

// BookingRepository is the persistence contract the reservation engine
// requires. CreateIfSlotFree must run its overlap check and insert inside
// one transaction, serialized per (venue, date), so two concurrent
// requests for overlapping slots cannot both commit.
type BookingRepository interface {
	CreateIfSlotFree(ctx context.Context, b *domain.Booking) error
	FindActiveOverlaps(ctx context.Context, venueID uuid.UUID, date time.Time, start, end string, excludeID *uuid.UUID) ([]domain.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus, payStatus domain.PaymentStatus, paymentID string) error
}

// VenueReader is the slice of the venue catalog the engine reads.
type VenueReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Venue, error)
}
