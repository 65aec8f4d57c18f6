package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ConflictChecker answers whether a candidate interval collides with any
// active booking for the same venue and date. It only reports; the caller
// decides what a conflict means. excludeID lets a reschedule re-check a
// slot without the booking colliding with itself.
type ConflictChecker struct {
	bookings BookingRepository
}

func NewConflictChecker(bookings BookingRepository) *ConflictChecker {
	return &ConflictChecker{bookings: bookings}
}

func (c *ConflictChecker) HasConflict(ctx context.Context, venueID uuid.UUID, date time.Time, start, end string, excludeID *uuid.UUID) (bool, error) {
	rows, err := c.bookings.FindActiveOverlaps(ctx, venueID, date, start, end, excludeID)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}
