package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingRefunded  BookingStatus = "refunded"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingRefunded:
		return true
	}
	return false
}

// Active reports whether the booking still holds its slot. Cancelled and
// refunded bookings are excluded from conflict checks.
func (s BookingStatus) Active() bool {
	return s != BookingCancelled && s != BookingRefunded
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// Booking holds a single venue time slot for one user on one calendar day.
// StartTime and EndTime are wall-clock "HH:MM" values on BookingDate; the
// interval is half-open, so EndTime of one booking may equal StartTime of
// the next.
type Booking struct {
	ID      uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey"`
	UserID  uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;index;not null"`
	VenueID uuid.UUID `json:"venue_id" gorm:"column:venue_id;type:uuid;index:idx_venue_day;not null"`

	BookingDate     time.Time `json:"booking_date" gorm:"column:booking_date;type:date;index:idx_venue_day;not null"`
	StartTime       string    `json:"start_time" gorm:"column:start_time;type:varchar(5);not null"`
	EndTime         string    `json:"end_time" gorm:"column:end_time;type:varchar(5);not null"`
	DurationMinutes int       `json:"duration_minutes" gorm:"column:duration_minutes;not null"`

	NumberOfPlayers int    `json:"number_of_players" gorm:"column:number_of_players;default:2"`
	TeamName        string `json:"team_name,omitempty" gorm:"column:team_name"`
	SpecialRequests string `json:"special_requests,omitempty" gorm:"column:special_requests;type:text"`
	AdminNotes      string `json:"admin_notes,omitempty" gorm:"column:admin_notes;type:text"`

	PricePerHour decimal.Decimal `json:"price_per_hour" gorm:"column:price_per_hour;type:decimal(10,2)"`
	TotalAmount  decimal.Decimal `json:"total_amount" gorm:"column:total_amount;type:decimal(10,2)"`

	Status        BookingStatus `json:"status" gorm:"column:status;type:varchar(50);default:'pending'"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"column:payment_status;type:varchar(50);default:'pending'"`
	PaymentID     string        `json:"payment_id,omitempty" gorm:"column:payment_id"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Booking) TableName() string { return "bookings" }
