package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courtbook/internal/domain"
)

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) List(ctx context.Context) ([]domain.Venue, error) {
	var rows []domain.Venue
	tx := r.db.WithContext(ctx).Order("court_name").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Venue, error) {
	var v domain.Venue
	tx := r.db.WithContext(ctx).First(&v, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return &v, nil
}
