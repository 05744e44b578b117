package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/justsurfingit/job-mailer/internal/models"
)

// singletonID is the primary key of the only profile row.
const singletonID = 1

// GormProfileStore keeps the profile as a single row in the profiles table.
type GormProfileStore struct {
	DB *gorm.DB
}

func NewGormProfileStore(db *gorm.DB) *GormProfileStore {
	return &GormProfileStore{DB: db}
}

func (s *GormProfileStore) Get(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	err := s.DB.WithContext(ctx).First(&p, singletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &p, nil
}

func (s *GormProfileStore) Put(ctx context.Context, p *models.Profile) error {
	p.ID = singletonID
	if err := s.DB.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
