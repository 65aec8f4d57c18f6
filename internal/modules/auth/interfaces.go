package auth

import (
	"context"

	"github.com/google/uuid"

	"courtbook/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type jwtService interface {
	GenerateToken(userID uuid.UUID, phone string) (string, error)
}
