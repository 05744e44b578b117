// Package app wires configuration into the services shared by the HTTP
// server and the command line tool.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/justsurfingit/job-mailer/internal/auth"
	"github.com/justsurfingit/job-mailer/internal/config"
	"github.com/justsurfingit/job-mailer/internal/database"
	"github.com/justsurfingit/job-mailer/internal/repository"
	"github.com/justsurfingit/job-mailer/internal/services"
)

type App struct {
	Config       config.Config
	Profiles     repository.ProfileRepository
	Applications *services.ApplicationService
	Resumes      *services.ResumeService
	ProfileSvc   *services.ProfileService

	db *gorm.DB
}

// New builds the services for cfg. The mail transport is created here so a
// misconfigured Gmail token fails at startup rather than at the first send.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	profiles, db, err := newProfileStore(cfg)
	if err != nil {
		return nil, err
	}

	transport, err := newTransport(ctx, cfg)
	if err != nil {
		closeDB(db)
		return nil, err
	}

	resumeDir := filepath.Join(cfg.DataDir, "resumes")
	generators := services.NewGeneratorFactory(services.LLMConfig{Provider: cfg.LLMProvider, Model: cfg.LLMModel})

	slog.Info("application wired",
		"profile_store", cfg.ProfileStore,
		"llm_provider", cfg.LLMProvider,
		"llm_model", cfg.LLMModel,
		"mail_transport", cfg.MailTransport)

	return &App{
		Config:       cfg,
		Profiles:     profiles,
		Applications: services.NewApplicationService(profiles, generators, services.NewMailService(transport, resumeDir)),
		Resumes:      services.NewResumeService(profiles, resumeDir),
		ProfileSvc:   services.NewProfileService(profiles),
		db:           db,
	}, nil
}

func (a *App) Close() {
	closeDB(a.db)
}

func newProfileStore(cfg config.Config) (repository.ProfileRepository, *gorm.DB, error) {
	if cfg.ProfileStore != config.StorePostgres {
		return repository.NewFileProfileStore(cfg.DataDir), nil, nil
	}
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect profile database: %w", err)
	}
	return repository.NewGormProfileStore(db), db, nil
}

func newTransport(ctx context.Context, cfg config.Config) (services.Transport, error) {
	if cfg.MailTransport != config.TransportGmail {
		return services.NewSMTPTransport(cfg.SMTPHost, cfg.SMTPPort), nil
	}
	srv, err := auth.NewGmailService(ctx, cfg.GmailCredentialsFile, cfg.GmailTokenFile)
	if err != nil {
		return nil, fmt.Errorf("gmail transport: %w", err)
	}
	return services.NewGmailTransport(srv), nil
}

func closeDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
