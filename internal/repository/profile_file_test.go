package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/job-mailer/internal/models"
)

func TestFileProfileStoreGetMissing(t *testing.T) {
	store := NewFileProfileStore(t.TempDir())

	_, err := store.Get(context.Background())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileProfileStorePutThenGet(t *testing.T) {
	dir := t.TempDir()
	store := NewFileProfileStore(dir)
	ctx := context.Background()

	in := &models.Profile{
		FullName:       "Jane Doe",
		SenderEmail:    "jane@example.com",
		AppPassword:    "app-secret",
		GeminiAPIKey:   "gemini-secret",
		ResumeFileName: "jane.pdf",
		ResumeContent:  "Go, Postgres, Kubernetes",
	}
	require.NoError(t, store.Put(ctx, in))

	out, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, in.FullName, out.FullName)
	assert.Equal(t, in.AppPassword, out.AppPassword)
	assert.Equal(t, in.ResumeFileName, out.ResumeFileName)
	assert.Equal(t, in.ResumeContent, out.ResumeContent)
	assert.False(t, out.CreatedAt.IsZero())

	info, err := os.Stat(filepath.Join(dir, ProfileFileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestFileProfileStorePutReplacesWholesale(t *testing.T) {
	store := NewFileProfileStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &models.Profile{FullName: "Jane", Phone: "555-0100"}))
	require.NoError(t, store.Put(ctx, &models.Profile{FullName: "Jane Doe"}))

	out, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", out.FullName)
	assert.Empty(t, out.Phone)
}

func TestFileProfileStoreCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProfileFileName), []byte("{not json"), 0o600))

	_, err := NewFileProfileStore(dir).Get(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
