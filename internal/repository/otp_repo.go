package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courtbook/internal/domain"
)

type OTPRepository struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) *OTPRepository {
	return &OTPRepository{db: db}
}

// FindActiveByPhone returns the single open code for a phone number:
// unverified and unexpired, newest first if legacy duplicates exist.
func (r *OTPRepository) FindActiveByPhone(ctx context.Context, phone string) (*domain.OTPVerification, error) {
	var otp domain.OTPVerification
	tx := r.db.WithContext(ctx).
		Where("phone_number = ? AND is_verified = ? AND expires_at > ?", phone, false, time.Now().UTC()).
		Order("created_at DESC").
		First(&otp)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return &otp, nil
}

func (r *OTPRepository) Create(ctx context.Context, otp *domain.OTPVerification) error {
	if otp.ID == uuid.Nil {
		otp.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(otp).Error
}

func (r *OTPRepository) Update(ctx context.Context, otp *domain.OTPVerification) error {
	return r.db.WithContext(ctx).Save(otp).Error
}
