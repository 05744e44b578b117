package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreFile     = "file"
	StorePostgres = "postgres"

	ProviderLangChain = "langchain"
	ProviderGenAI     = "genai"

	TransportSMTP  = "smtp"
	TransportGmail = "gmail"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	LogLevel        string
	CORSAllowOrigin []string

	// DataDir holds the profile file and the uploaded resume.
	DataDir      string
	ProfileStore string
	DatabaseURL  string

	LLMProvider string
	LLMModel    string

	MailTransport        string
	SMTPHost             string
	SMTPPort             int
	GmailCredentialsFile string
	GmailTokenFile       string
}

// Load reads configuration from the environment, after a best-effort load of
// a local .env file.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	port, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		slog.Warn("invalid SMTP_PORT, using 587", "error", err)
		port = 587
	}

	return Config{
		Port:                 getEnv("PORT", "8080"),
		Env:                  normalizeEnv(getEnv("ENV", "dev")),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		CORSAllowOrigin:      splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		DataDir:              getEnv("DATA_DIR", "./uploads"),
		ProfileStore:         oneOf(getEnv("PROFILE_STORE", StoreFile), StoreFile, StorePostgres),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		LLMProvider:          oneOf(getEnv("LLM_PROVIDER", ProviderLangChain), ProviderLangChain, ProviderGenAI),
		LLMModel:             getEnv("LLM_MODEL", "gemini-2.5-flash"),
		MailTransport:        oneOf(getEnv("MAIL_TRANSPORT", TransportSMTP), TransportSMTP, TransportGmail),
		SMTPHost:             getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:             port,
		GmailCredentialsFile: getEnv("GMAIL_CREDENTIALS_FILE", "credential.json"),
		GmailTokenFile:       getEnv("GMAIL_TOKEN_FILE", "token.json"),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	default:
		return "dev"
	}
}

// oneOf returns raw lower-cased if it is an allowed value, otherwise the first allowed value.
func oneOf(raw string, allowed ...string) string {
	clean := strings.ToLower(strings.TrimSpace(raw))
	for _, a := range allowed {
		if clean == a {
			return a
		}
	}
	return allowed[0]
}
