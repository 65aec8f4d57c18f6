package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey"`
	PhoneNumber  string    `json:"phone_number,omitempty" gorm:"column:phone_number;index"`
	CountryCode  string    `json:"country_code,omitempty" gorm:"column:country_code;default:'+91'"`
	Email        string    `json:"email,omitempty" gorm:"column:email;index"`
	PasswordHash string    `json:"-" gorm:"column:password_hash"`
	FirstName    string    `json:"first_name,omitempty" gorm:"column:first_name"`
	LastName     string    `json:"last_name,omitempty" gorm:"column:last_name"`
	FullName     string    `json:"full_name,omitempty" gorm:"column:full_name"`

	AvatarURL        string   `json:"avatar_url,omitempty" gorm:"column:avatar_url;type:text"`
	Gender           string   `json:"gender,omitempty" gorm:"column:gender"`
	Age              int      `json:"age,omitempty" gorm:"column:age"`
	City             string   `json:"city,omitempty" gorm:"column:city"`
	SkillLevel       string   `json:"skill_level,omitempty" gorm:"column:skill_level"`
	PlayingStyle     string   `json:"playing_style,omitempty" gorm:"column:playing_style"`
	Handedness       string   `json:"handedness,omitempty" gorm:"column:handedness"`
	FavoriteSports   []string `json:"favorite_sports,omitempty" gorm:"column:favorite_sports;serializer:json"`
	ProfileCompleted bool     `json:"profile_completed" gorm:"column:profile_completed;default:false"`

	IsVerified  bool       `json:"is_verified" gorm:"column:is_verified;default:false"`
	IsActive    bool       `json:"is_active" gorm:"column:is_active;default:true"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty" gorm:"column:last_login_at"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string { return "users" }
