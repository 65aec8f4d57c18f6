package domain

import (
	"time"

	"github.com/google/uuid"
)

// OTPVerification tracks one login code for a phone number. At most one
// open record (unverified, unexpired) exists per phone: resending a code
// updates it in place instead of inserting a sibling.
type OTPVerification struct {
	ID          uuid.UUID  `json:"id" gorm:"column:id;type:uuid;primaryKey"`
	PhoneNumber string     `json:"phone_number" gorm:"column:phone_number;index;not null"`
	CountryCode string     `json:"country_code" gorm:"column:country_code;default:'+91'"`
	OTPCode     string     `json:"-" gorm:"column:otp_code;not null"`
	IsVerified  bool       `json:"is_verified" gorm:"column:is_verified;default:false"`
	Attempts    int        `json:"attempts" gorm:"column:attempts;default:0"`
	MaxAttempts int        `json:"max_attempts" gorm:"column:max_attempts;default:3"`
	ExpiresAt   time.Time  `json:"expires_at" gorm:"column:expires_at;not null"`
	VerifiedAt  *time.Time `json:"verified_at,omitempty" gorm:"column:verified_at"`
	IPAddress   string     `json:"ip_address,omitempty" gorm:"column:ip_address"`
	UserAgent   string     `json:"user_agent,omitempty" gorm:"column:user_agent;type:text"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at"`
}

func (OTPVerification) TableName() string { return "otp_verifications" }
