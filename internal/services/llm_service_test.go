package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/justsurfingit/job-mailer/internal/apperrors"
	"github.com/justsurfingit/job-mailer/internal/config"
)

type fakeModel struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeModel) GenerateContent(_ context.Context, msgs []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, m := range msgs {
		for _, p := range m.Parts {
			if tc, ok := p.(llms.TextContent); ok {
				f.prompts = append(f.prompts, tc.Text)
			}
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.text}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, opts ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, opts...)
}

func TestNewGeneratorRequiresKey(t *testing.T) {
	for _, provider := range []string{config.ProviderLangChain, config.ProviderGenAI} {
		t.Run(provider, func(t *testing.T) {
			gen, err := NewGenerator(context.Background(), LLMConfig{Provider: provider, Model: "gemini-2.5-flash"}, "  ")

			assert.Nil(t, gen)
			assert.Equal(t, apperrors.KindCredential, apperrors.KindOf(err))
			assert.Equal(t, "Gemini API key not configured", apperrors.PublicMessage(err))
		})
	}
}

func TestLangChainGeneratorGenerate(t *testing.T) {
	model := &fakeModel{text: wellFormed}
	gen := &LangChainGenerator{Client: model}

	out, err := gen.Generate(context.Background(), "write the email")

	require.NoError(t, err)
	assert.Equal(t, wellFormed, out)
	assert.Equal(t, []string{"write the email"}, model.prompts)
}

func TestLangChainGeneratorFailure(t *testing.T) {
	gen := &LangChainGenerator{Client: &fakeModel{err: errors.New("503 model overloaded")}}

	_, err := gen.Generate(context.Background(), "prompt")

	assert.Equal(t, apperrors.KindGeneration, apperrors.KindOf(err))
	assert.ErrorContains(t, err, "503 model overloaded")
}

func TestLangChainGeneratorEmptyAnswer(t *testing.T) {
	gen := &LangChainGenerator{Client: &fakeModel{text: "  \n"}}

	_, err := gen.Generate(context.Background(), "prompt")

	assert.Equal(t, apperrors.KindGeneration, apperrors.KindOf(err))
}

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"subject":`), genai.Text(`"s"}`)}},
		}},
	}

	text, err := responseText(resp)

	require.NoError(t, err)
	assert.Equal(t, `{"subject":"s"}`, text)

	_, err = responseText(&genai.GenerateContentResponse{})
	assert.Error(t, err)

	_, err = responseText(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}})
	assert.Error(t, err)
}

func TestResponseTextBlank(t *testing.T) {
	for name, parts := range map[string][]genai.Part{
		"empty":      {genai.Text("")},
		"whitespace": {genai.Text("  "), genai.Text("\n")},
	} {
		t.Run(name, func(t *testing.T) {
			resp := &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
			}

			_, err := responseText(resp)

			assert.EqualError(t, err, "empty response from model")
		})
	}
}
