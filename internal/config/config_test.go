package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "DATA_DIR", "PROFILE_STORE", "LLM_PROVIDER", "LLM_MODEL",
		"MAIL_TRANSPORT", "SMTP_HOST", "SMTP_PORT", "CORS_ALLOW_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "./uploads", cfg.DataDir)
	assert.Equal(t, StoreFile, cfg.ProfileStore)
	assert.Equal(t, ProviderLangChain, cfg.LLMProvider)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLMModel)
	assert.Equal(t, TransportSMTP, cfg.MailTransport)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigin)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "prod")
	t.Setenv("PROFILE_STORE", "Postgres")
	t.Setenv("LLM_PROVIDER", "genai")
	t.Setenv("MAIL_TRANSPORT", "gmail")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000, https://mailer.example.com ,")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, StorePostgres, cfg.ProfileStore)
	assert.Equal(t, ProviderGenAI, cfg.LLMProvider)
	assert.Equal(t, TransportGmail, cfg.MailTransport)
	assert.Equal(t, 465, cfg.SMTPPort)
	assert.Equal(t, []string{"http://localhost:3000", "https://mailer.example.com"}, cfg.CORSAllowOrigin)
}

func TestLoadFallsBackOnUnknownValues(t *testing.T) {
	t.Setenv("PROFILE_STORE", "redis")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("SMTP_PORT", "not-a-port")

	cfg := Load()

	assert.Equal(t, StoreFile, cfg.ProfileStore)
	assert.Equal(t, ProviderLangChain, cfg.LLMProvider)
	assert.Equal(t, 587, cfg.SMTPPort)
}
