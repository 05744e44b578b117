// Package repository persists the installation's single profile record.
package repository

import (
	"context"
	"errors"

	"github.com/justsurfingit/job-mailer/internal/models"
)

// ErrNotFound is returned by Get when no profile has been saved yet.
var ErrNotFound = errors.New("profile not found")

// ProfileRepository stores the one profile record. Put replaces the record
// wholesale; there is no partial update and no locking between writers.
type ProfileRepository interface {
	Get(ctx context.Context) (*models.Profile, error)
	Put(ctx context.Context, p *models.Profile) error
}
