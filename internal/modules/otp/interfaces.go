package otp

import (
	"context"

	"github.com/google/uuid"

	"courtbook/internal/domain"
)

type OTPRepository interface {
	FindActiveByPhone(ctx context.Context, phone string) (*domain.OTPVerification, error)
	Create(ctx context.Context, otp *domain.OTPVerification) error
	Update(ctx context.Context, otp *domain.OTPVerification) error
}

type UserRepository interface {
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
}

type jwtService interface {
	GenerateToken(userID uuid.UUID, phone string) (string, error)
}
