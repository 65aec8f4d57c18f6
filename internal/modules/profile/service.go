package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"courtbook/internal/domain"
	"courtbook/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

// Save applies the non-nil fields of req to the user's profile.
// profile_completed flips once a full name is present.
func (s *Service) Save(ctx context.Context, userID uuid.UUID, req SaveRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Age != nil {
		user.Age = *req.Age
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.SkillLevel != nil {
		user.SkillLevel = *req.SkillLevel
	}
	if req.PlayingStyle != nil {
		user.PlayingStyle = *req.PlayingStyle
	}
	if req.Handedness != nil {
		user.Handedness = *req.Handedness
	}
	if req.FavoriteSports != nil {
		user.FavoriteSports = *req.FavoriteSports
	}

	if user.FullName != "" {
		user.ProfileCompleted = true
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	user, err := s.users.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
