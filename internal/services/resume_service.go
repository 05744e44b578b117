package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/justsurfingit/job-mailer/internal/apperrors"
	"github.com/justsurfingit/job-mailer/internal/extract"
	"github.com/justsurfingit/job-mailer/internal/logger"
	"github.com/justsurfingit/job-mailer/internal/models"
	"github.com/justsurfingit/job-mailer/internal/repository"
)

type ResumeService struct {
	Profiles  repository.ProfileRepository
	ResumeDir string
	// Extract defaults to extract.Text.
	Extract func(path string) (string, error)
}

func NewResumeService(profiles repository.ProfileRepository, resumeDir string) *ResumeService {
	return &ResumeService{Profiles: profiles, ResumeDir: resumeDir, Extract: extract.Text}
}

// Upload stores a new resume, extracts its text once and caches the result
// on the profile. The previous resume file is removed before the new one is
// written. If extraction fails the new file is discarded and the profile is
// left without a resume.
func (s *ResumeService) Upload(ctx context.Context, fileName string, content io.Reader) (*models.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Internal(err)
	}

	name := sanitizeFileName(fileName)
	if name == "" {
		return nil, apperrors.Request("required field missing: resume")
	}

	log := logger.FromContext(ctx).With("component", "resume", "operation", "upload")

	profile, err := s.Profiles.Get(ctx)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		profile = &models.Profile{}
	case err != nil:
		return nil, apperrors.Internal(fmt.Errorf("load profile: %w", err))
	}

	if profile.ResumeFileName != "" {
		prev := filepath.Join(s.ResumeDir, profile.ResumeFileName)
		err := os.Remove(prev)
		switch {
		case err == nil:
			log.Info("removed previous resume", "file", profile.ResumeFileName)
		case !errors.Is(err, os.ErrNotExist):
			log.Warn("failed to remove previous resume", "file", profile.ResumeFileName, "error", err)
		}
	}

	path := filepath.Join(s.ResumeDir, name)
	if err := writeFile(path, content); err != nil {
		return nil, apperrors.Internal(fmt.Errorf("store resume: %w", err))
	}

	text, err := s.Extract(path)
	if err != nil {
		log.Error("resume extraction failed", "file", name, "error", err)
		_ = os.Remove(path)
		profile.SetResume("", "")
		if putErr := s.Profiles.Put(ctx, profile); putErr != nil {
			log.Error("failed to clear resume on profile", "error", putErr)
		}
		if apperrors.Is(err, apperrors.KindExtraction) {
			return nil, err
		}
		return nil, apperrors.Extraction(err)
	}

	profile.SetResume(name, text)
	if err := s.Profiles.Put(ctx, profile); err != nil {
		return nil, apperrors.Internal(fmt.Errorf("save profile: %w", err))
	}

	log.Info("resume stored", "file", name, "text_length", len(text))
	return profile, nil
}

func sanitizeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	return name
}

func writeFile(path string, content io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
