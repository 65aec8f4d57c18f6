package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"courtbook/internal/domain"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrSlotTaken   = errors.New("slot already taken")
	ErrStaleStatus = errors.New("booking status changed concurrently")
)

// IsSerializationFailure reports Postgres serialization or deadlock
// aborts (40001, 40P01). Safe to retry the whole transaction.
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

var inactiveStatuses = []string{
	string(domain.BookingCancelled),
	string(domain.BookingRefunded),
}

// CreateIfSlotFree checks for overlapping active bookings and inserts in
// one transaction. On Postgres an advisory lock keyed by (venue, date) is
// taken before the overlap query, so two concurrent requests for the same
// venue/day serialize and the loser observes the winner's row. SQLite
// serializes writers on its own.
func (r *BookingRepository) CreateIfSlotFree(ctx context.Context, b *domain.Booking) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == "postgres" {
			key := b.VenueID.String() + "|" + b.BookingDate.Format("2006-01-02")
			if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", key).Error; err != nil {
				return err
			}
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		overlaps, err := findActiveOverlaps(q, b.VenueID, b.BookingDate, b.StartTime, b.EndTime, nil)
		if err != nil {
			return err
		}
		if len(overlaps) > 0 {
			return ErrSlotTaken
		}

		if err := tx.Create(b).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "idx_no_double_booking" {
				return ErrSlotTaken
			}
			return err
		}
		return nil
	})
}

func (r *BookingRepository) FindActiveOverlaps(ctx context.Context, venueID uuid.UUID, date time.Time, start, end string, excludeID *uuid.UUID) ([]domain.Booking, error) {
	return findActiveOverlaps(r.db.WithContext(ctx), venueID, date, start, end, excludeID)
}

// findActiveOverlaps applies the half-open overlap predicate
// (start < end' AND end > start') to active bookings of one venue/day.
// HH:MM strings are zero-padded, so SQL string comparison is time order.
func findActiveOverlaps(tx *gorm.DB, venueID uuid.UUID, date time.Time, start, end string, excludeID *uuid.UUID) ([]domain.Booking, error) {
	q := tx.
		Where("venue_id = ? AND booking_date = ?", venueID, date).
		Where("status NOT IN ?", inactiveStatuses).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var rows []domain.Booking
	if err := q.Order("start_time").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).First(&b, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	var rows []domain.Booking
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("booking_date DESC").
		Order("start_time DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// UpdateStatus writes both lifecycle fields in one short transaction.
// The write is a compare-and-set on the status the caller validated, so
// a transition raced by another writer updates zero rows instead of
// overwriting the newer state. paymentID is recorded only when non-empty.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus, payStatus domain.PaymentStatus, paymentID string) error {
	updates := map[string]any{
		"status":         string(to),
		"payment_status": string(payStatus),
		"updated_at":     time.Now().UTC(),
	}
	if paymentID != "" {
		updates["payment_id"] = paymentID
	}

	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		// Bookings are never deleted, so zero rows means the status moved
		// between the caller's read and this write.
		return ErrStaleStatus
	}
	return nil
}
