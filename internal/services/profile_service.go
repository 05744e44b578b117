package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/justsurfingit/job-mailer/internal/apperrors"
	"github.com/justsurfingit/job-mailer/internal/models"
	"github.com/justsurfingit/job-mailer/internal/repository"
)

type ProfileService struct {
	Profiles repository.ProfileRepository
}

func NewProfileService(profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{Profiles: profiles}
}

func (s *ProfileService) Get(ctx context.Context) (*models.Profile, error) {
	p, err := s.Profiles.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("profile not found")
	}
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("load profile: %w", err))
	}
	return p, nil
}

// Save replaces every user-editable field. The resume pair is only ever
// changed by an upload, so it is carried over from the stored record.
func (s *ProfileService) Save(ctx context.Context, update *models.Profile) (*models.Profile, error) {
	current, err := s.Profiles.Get(ctx)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		update.SetResume("", "")
	case err != nil:
		return nil, apperrors.Internal(fmt.Errorf("load profile: %w", err))
	default:
		update.CreatedAt = current.CreatedAt
		update.SetResume(current.ResumeFileName, current.ResumeContent)
	}

	if err := s.Profiles.Put(ctx, update); err != nil {
		return nil, apperrors.Internal(fmt.Errorf("save profile: %w", err))
	}
	return update, nil
}
