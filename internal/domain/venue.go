package domain

import (
	"time"

	"github.com/google/uuid"
)

// Venue is owned by the admin catalog and read-only to the booking engine.
// Prices is a free-form rate specification; when it does not parse as a
// non-negative decimal the engine charges the default hourly rate.
type Venue struct {
	ID          uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey"`
	GameType    string    `json:"game_type" gorm:"column:game_type"`
	CourtName   string    `json:"court_name" gorm:"column:court_name"`
	Location    string    `json:"location,omitempty" gorm:"column:location;type:text"`
	Prices      string    `json:"prices,omitempty" gorm:"column:prices"`
	Description string    `json:"description,omitempty" gorm:"column:description;type:text"`
	Photos      []string  `json:"photos,omitempty" gorm:"column:photos;serializer:json"`
	Videos      []string  `json:"videos,omitempty" gorm:"column:videos;serializer:json"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Venue) TableName() string { return "venues" }
