package repository

import (
	"context"

	"gorm.io/gorm"

	"courtbook/internal/domain"
)

type LookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) *LookupRepository {
	return &LookupRepository{db: db}
}

func (r *LookupRepository) ActiveCities(ctx context.Context) ([]domain.City, error) {
	var rows []domain.City
	tx := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *LookupRepository) ActiveGameTypes(ctx context.Context) ([]domain.GameType, error) {
	var rows []domain.GameType
	tx := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
