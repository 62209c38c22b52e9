package repository

import (
	"context"
	"errors"

	"github.com/abyansyah052/deploytps/internal/entity"
	"gorm.io/gorm"
)

type SopRepository struct {
	db *gorm.DB
}

func NewSopRepository(db *gorm.DB) *SopRepository {
	return &SopRepository{db: db}
}

// Get returns the single SOP document, or ErrNotFound when none exists.
func (r *SopRepository) Get(ctx context.Context) (*entity.SopDocument, error) {
	var doc entity.SopDocument
	err := r.db.WithContext(ctx).Order("id").First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// Save creates or replaces the single SOP document.
func (r *SopRepository) Save(ctx context.Context, doc *entity.SopDocument) error {
	return r.db.WithContext(ctx).Save(doc).Error
}
