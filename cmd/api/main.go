package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/job-mailer/internal/app"
	"github.com/justsurfingit/job-mailer/internal/config"
	"github.com/justsurfingit/job-mailer/internal/handlers"
	"github.com/justsurfingit/job-mailer/internal/logger"
)

func main() {
	// 1. Configuration and logging
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.Env)
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	// 3. Handlers and routes
	router := handlers.NewRouter(cfg.CORSAllowOrigin, handlers.Handlers{
		Email:   handlers.NewEmailHandler(a.Applications),
		Resume:  handlers.NewResumeHandler(a.Resumes),
		Profile: handlers.NewProfileHandler(a.ProfileSvc),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
