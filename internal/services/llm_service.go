package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"google.golang.org/api/option"

	"github.com/justsurfingit/job-mailer/internal/apperrors"
	"github.com/justsurfingit/job-mailer/internal/config"
	"github.com/justsurfingit/job-mailer/internal/logger"
)

// Generator sends one prompt to a text-generation service and returns its raw answer.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFactory builds a Generator for the API key stored in the profile.
type GeneratorFactory func(ctx context.Context, apiKey string) (Generator, error)

type LLMConfig struct {
	Provider string
	Model    string
}

// NewGeneratorFactory returns a factory bound to the configured provider and model.
func NewGeneratorFactory(cfg LLMConfig) GeneratorFactory {
	return func(ctx context.Context, apiKey string) (Generator, error) {
		return NewGenerator(ctx, cfg, apiKey)
	}
}

// NewGenerator builds the client for cfg.Provider. A missing or rejected key
// fails here, before any network call.
func NewGenerator(ctx context.Context, cfg LLMConfig, apiKey string) (Generator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, apperrors.Credential("Gemini API key not configured", nil)
	}

	switch cfg.Provider {
	case config.ProviderGenAI:
		client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
		if err != nil {
			return nil, apperrors.Credential("invalid Gemini API key", err)
		}
		return &GenAIGenerator{client: client, model: cfg.Model}, nil
	default:
		llm, err := googleai.New(ctx,
			googleai.WithAPIKey(apiKey),
			googleai.WithDefaultModel(cfg.Model),
		)
		if err != nil {
			return nil, apperrors.Credential("invalid Gemini API key", err)
		}
		return &LangChainGenerator{Client: llm}, nil
	}
}

// LangChainGenerator calls Gemini through langchaingo.
type LangChainGenerator struct {
	Client llms.Model
}

func (g *LangChainGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx).With("component", "llm", "provider", "langchain")
	start := time.Now()

	resp, err := llms.GenerateFromSinglePrompt(ctx, g.Client, prompt)
	if err != nil {
		log.Error("generation failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		return "", apperrors.Generation(err)
	}
	if strings.TrimSpace(resp) == "" {
		return "", apperrors.Generation(errors.New("empty response from model"))
	}

	log.Info("received model response",
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_length", len(prompt),
		"response_length", len(resp))
	return resp, nil
}

// GenAIGenerator calls Gemini through the generative-ai-go SDK.
type GenAIGenerator struct {
	client *genai.Client
	model  string
}

func (g *GenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx).With("component", "llm", "provider", "genai")
	start := time.Now()

	model := g.client.GenerativeModel(g.model)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error("generation failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		return "", apperrors.Generation(err)
	}

	if resp.UsageMetadata != nil {
		log.Info("received model response",
			"duration_ms", time.Since(start).Milliseconds(),
			"input_tokens", resp.UsageMetadata.PromptTokenCount,
			"output_tokens", resp.UsageMetadata.CandidatesTokenCount)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", apperrors.Generation(err)
	}
	return text, nil
}

func (g *GenAIGenerator) Close() error {
	return g.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", errors.New("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	text := strings.Join(parts, "")
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}
