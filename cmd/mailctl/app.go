package main

import (
	"github.com/spf13/cobra"

	"github.com/justsurfingit/job-mailer/internal/app"
	"github.com/justsurfingit/job-mailer/internal/config"
	"github.com/justsurfingit/job-mailer/internal/logger"
)

func newApp(cmd *cobra.Command) (*app.App, error) {
	cfg := config.Load()
	logger.SetupWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.Env)
	return app.New(cmd.Context(), cfg)
}
