package domain

import (
	"time"

	"github.com/google/uuid"
)

type City struct {
	ID        uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"column:name;not null"`
	ShortCode string    `json:"short_code,omitempty" gorm:"column:short_code"`
	IsActive  bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (City) TableName() string { return "cities" }

type GameType struct {
	ID          uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"column:name;not null"`
	ShortCode   string    `json:"short_code,omitempty" gorm:"column:short_code"`
	Description string    `json:"description,omitempty" gorm:"column:description;type:text"`
	Icon        string    `json:"icon,omitempty" gorm:"column:icon"`
	IconURL     string    `json:"icon_url,omitempty" gorm:"column:icon_url;type:text"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (GameType) TableName() string { return "game_types" }
