package booking

import (
	"time"

	"github.com/google/uuid"

	"courtbook/internal/domain"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	VenueID         uuid.UUID `json:"venue_id" binding:"required"`
	BookingDate     string    `json:"booking_date" binding:"required"`
	StartTime       string    `json:"start_time" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required"`
	NumberOfPlayers int       `json:"number_of_players"`
	TeamName        string    `json:"team_name"`
	SpecialRequests string    `json:"special_requests"`
}

type PaymentResultRequest struct {
	Status    string `json:"status" binding:"required,oneof=paid failed"`
	PaymentID string `json:"payment_id"`
}

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	VenueID         uuid.UUID `json:"venue_id"`
	BookingDate     string    `json:"booking_date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	NumberOfPlayers int       `json:"number_of_players"`
	TeamName        string    `json:"team_name,omitempty"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	PricePerHour    string    `json:"price_per_hour"`
	TotalAmount     string    `json:"total_amount"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	PaymentID       string    `json:"payment_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		VenueID:         b.VenueID,
		BookingDate:     b.BookingDate.Format(dateLayout),
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		DurationMinutes: b.DurationMinutes,
		NumberOfPlayers: b.NumberOfPlayers,
		TeamName:        b.TeamName,
		SpecialRequests: b.SpecialRequests,
		PricePerHour:    b.PricePerHour.StringFixed(2),
		TotalAmount:     b.TotalAmount.StringFixed(2),
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		PaymentID:       b.PaymentID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func toBookingResponses(bs []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bs))
	for i := range bs {
		out = append(out, toBookingResponse(&bs[i]))
	}
	return out
}
