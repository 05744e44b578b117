package database

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/justsurfingit/job-mailer/internal/models"
)

// Connect opens the postgres database and migrates the profiles table.
func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the postgres profile store")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	slog.Info("database connection established")

	if err := db.AutoMigrate(&models.Profile{}); err != nil {
		return nil, fmt.Errorf("migrate profiles: %w", err)
	}
	return db, nil
}
