package venue

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"courtbook/internal/domain"
	"courtbook/internal/repository"
)

var ErrNotFound = errors.New("venue not found")

type VenueRepository interface {
	List(ctx context.Context) ([]domain.Venue, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Venue, error)
}

type LookupRepository interface {
	ActiveCities(ctx context.Context) ([]domain.City, error)
	ActiveGameTypes(ctx context.Context) ([]domain.GameType, error)
}

// Service is the read-only catalog surface: venues plus the city and
// game-type lookup tables the clients filter by.
type Service struct {
	venues  VenueRepository
	lookups LookupRepository
}

func NewService(venues VenueRepository, lookups LookupRepository) *Service {
	return &Service{venues: venues, lookups: lookups}
}

func (s *Service) ListVenues(ctx context.Context) ([]domain.Venue, error) {
	return s.venues.List(ctx)
}

func (s *Service) GetVenue(ctx context.Context, id uuid.UUID) (*domain.Venue, error) {
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) ListCities(ctx context.Context) ([]domain.City, error) {
	return s.lookups.ActiveCities(ctx)
}

func (s *Service) ListGameTypes(ctx context.Context) ([]domain.GameType, error) {
	return s.lookups.ActiveGameTypes(ctx)
}
