package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/justsurfingit/job-mailer/internal/apperrors"
	"github.com/justsurfingit/job-mailer/internal/logger"
	"github.com/justsurfingit/job-mailer/internal/models"
	"github.com/justsurfingit/job-mailer/internal/repository"
)

// Mailer composes and delivers a generated email for a profile.
type Mailer interface {
	Send(ctx context.Context, email *models.GeneratedEmail, p *models.Profile) error
}

// ApplicationService runs the generate and send pipelines. Each stage runs
// after its predecessor and the first failure ends the request.
type ApplicationService struct {
	Profiles     repository.ProfileRepository
	NewGenerator GeneratorFactory
	Mailer       Mailer
}

func NewApplicationService(profiles repository.ProfileRepository, newGenerator GeneratorFactory, mailer Mailer) *ApplicationService {
	return &ApplicationService{
		Profiles:     profiles,
		NewGenerator: newGenerator,
		Mailer:       mailer,
	}
}

// GenerateEmail drafts an application email for the job post in in.
func (s *ApplicationService) GenerateEmail(ctx context.Context, in models.GenerationInput) (*models.GeneratedEmail, error) {
	if strings.TrimSpace(in.JobPost) == "" {
		return nil, apperrors.Request("required field missing: jobPost")
	}

	log := logger.FromContext(ctx).With("component", "application", "operation", "generate")

	profile, err := s.loadProfile(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(profile.GeminiAPIKey) == "" {
		return nil, apperrors.Credential("Gemini API key not configured", nil)
	}
	if strings.TrimSpace(profile.ResumeContent) == "" {
		return nil, apperrors.Configuration("resume content not available, upload your resume first")
	}

	gen, err := s.NewGenerator(ctx, profile.GeminiAPIKey)
	if err != nil {
		return nil, err
	}
	if closer, ok := gen.(io.Closer); ok {
		defer closer.Close()
	}

	in.JobPost = CleanJobPost(in.JobPost)
	in.Style = models.ParseStyle(string(in.Style))
	prompt := BuildPrompt(in, profile)

	log.Info("generating email", "style", in.Style, "explicit_recipient", strings.TrimSpace(in.Recipient) != "")

	raw, err := gen.Generate(ctx, prompt)
	if err != nil {
		if _, ok := apperrors.As(err); !ok {
			err = apperrors.Generation(err)
		}
		return nil, err
	}

	email, err := NormalizeResponse(raw, in.Recipient)
	if err != nil {
		if apperrors.Is(err, apperrors.KindParse) {
			log.Error("model output rejected", "error", err, "raw_output", raw)
		} else {
			log.Warn("generated email rejected", "error", err)
		}
		return nil, err
	}

	log.Info("email generated", "receiver", email.ReceiverEmail)
	return email, nil
}

// SendEmail delivers an email the caller has reviewed.
func (s *ApplicationService) SendEmail(ctx context.Context, email *models.GeneratedEmail) error {
	switch {
	case strings.TrimSpace(email.ReceiverEmail) == "":
		return apperrors.Request("required field missing: receiverEmail")
	case strings.TrimSpace(email.Subject) == "":
		return apperrors.Request("required field missing: subject")
	case strings.TrimSpace(email.Body) == "":
		return apperrors.Request("required field missing: body")
	}

	profile, err := s.loadProfile(ctx)
	if err != nil {
		return err
	}
	return s.Mailer.Send(ctx, email, profile)
}

func (s *ApplicationService) loadProfile(ctx context.Context) (*models.Profile, error) {
	profile, err := s.Profiles.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Configuration("profile not configured, save your profile first")
	}
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("load profile: %w", err))
	}
	return profile, nil
}
