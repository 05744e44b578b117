package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/job-mailer/internal/apperrors"
	"github.com/justsurfingit/job-mailer/internal/models"
)

func TestProfileServiceGetMissing(t *testing.T) {
	_, err := NewProfileService(&memProfiles{}).Get(context.Background())

	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Equal(t, "profile not found", apperrors.PublicMessage(err))
}

func TestProfileServiceSaveKeepsResumePair(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	profiles := &memProfiles{profile: &models.Profile{
		CreatedAt:      created,
		FullName:       "Old Name",
		Phone:          "+1 555 0100",
		ResumeFileName: "cv.pdf",
		ResumeContent:  "Go engineer",
	}}

	saved, err := NewProfileService(profiles).Save(context.Background(), &models.Profile{
		FullName:       "Jane Doe",
		SenderEmail:    "jane@example.com",
		AppPassword:    "pw",
		GeminiAPIKey:   "gm-key",
		ResumeFileName: "attacker.pdf",
		ResumeContent:  "injected",
	})

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", saved.FullName)
	assert.Empty(t, profiles.profile.Phone, "save replaces the record wholesale")
	assert.Equal(t, "cv.pdf", profiles.profile.ResumeFileName)
	assert.Equal(t, "Go engineer", profiles.profile.ResumeContent)
	assert.Equal(t, created, profiles.profile.CreatedAt)
}

func TestProfileServiceSaveFirstTime(t *testing.T) {
	profiles := &memProfiles{}

	_, err := NewProfileService(profiles).Save(context.Background(), &models.Profile{
		FullName:      "Jane Doe",
		ResumeContent: "injected",
	})

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profiles.profile.FullName)
	assert.Empty(t, profiles.profile.ResumeContent)
}
