package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/job-mailer/internal/apperrors"
)

const wellFormed = `{"subject":"Backend Engineer application","body":"Hello,\n\nI am applying.","signature":"Jane Doe\njane@example.com","receiverEmail":"hr@acme.com"}`

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fences", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence without newline", "```json{\"a\":1}```", `{"a":1}`},
		{"surrounding whitespace", "  \n```JSON\n{\"a\":1}\n```\n\n", `{"a":1}`},
		{"preamble", "Here is the email:\n```json\n{\"a\":1}\n```", `{"a":1}`},
		{"nested fences", "```\n```json\n{\"a\":1}\n```\n```", `{"a":1}`},
		{"unterminated", "```json\n{\"a\":1}", `{"a":1}`},
		{"postamble", "```json\n{\"a\":1}\n```\nLet me know if you need changes.", `{"a":1}`},
		{"fence inside fenced body", "```json\n{\"body\":\"run ```go\\nmain()\\n``` now\"}\n```", "{\"body\":\"run ```go\\nmain()\\n``` now\"}"},
		{"fence inside unfenced body", "{\"body\":\"use ```code``` here\"}", "{\"body\":\"use ```code``` here\"}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := StripCodeFences(tt.input)
			assert.Equal(t, tt.want, once)
			assert.Equal(t, once, StripCodeFences(once), "stripping must be idempotent")
		})
	}
}

func TestNormalizeResponseRoundTrip(t *testing.T) {
	email, err := NormalizeResponse(wellFormed, "")

	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer application", email.Subject)
	assert.Equal(t, "Hello,\n\nI am applying.", email.Body)
	assert.Equal(t, "Jane Doe\njane@example.com", email.Signature)
	assert.Equal(t, "hr@acme.com", email.ReceiverEmail)
}

func TestNormalizeResponseFenced(t *testing.T) {
	email, err := NormalizeResponse("```json\n"+wellFormed+"\n```", "")

	require.NoError(t, err)
	assert.Equal(t, "hr@acme.com", email.ReceiverEmail)
}

func TestNormalizeResponseKeepsCodeBlocksInBody(t *testing.T) {
	raw := "{\"subject\":\"s\",\"body\":\"My fix:\\n```go\\nfmt.Println(1)\\n```\\nThanks\",\"receiverEmail\":\"hr@acme.com\"}"
	want := "My fix:\n```go\nfmt.Println(1)\n```\nThanks"

	for name, input := range map[string]string{
		"fenced":   "```json\n" + raw + "\n```",
		"unfenced": raw,
	} {
		t.Run(name, func(t *testing.T) {
			email, err := NormalizeResponse(input, "")

			require.NoError(t, err)
			assert.Equal(t, want, email.Body)
			assert.Equal(t, "hr@acme.com", email.ReceiverEmail)
		})
	}
}

func TestNormalizeResponseExplicitRecipientWins(t *testing.T) {
	models := []string{"hr@acme.com", NotSpecifiedRecipient, NoRecipientSentinel, ""}

	for _, modelRecipient := range models {
		t.Run(modelRecipient, func(t *testing.T) {
			raw := `{"subject":"s","body":"b","signature":"","receiverEmail":"` + modelRecipient + `"}`

			email, err := NormalizeResponse(raw, "jobs@foo.com")

			require.NoError(t, err)
			assert.Equal(t, "jobs@foo.com", email.ReceiverEmail)
		})
	}
}

func TestNormalizeResponseUnresolvedRecipient(t *testing.T) {
	tests := map[string]string{
		"not specified": `{"subject":"s","body":"b","receiverEmail":"Not specified"}`,
		"none found":    `{"subject":"s","body":"b","receiverEmail":"none@found.com"}`,
		"empty":         `{"subject":"s","body":"b","receiverEmail":""}`,
		"absent":        `{"subject":"s","body":"b"}`,
		"null":          `{"subject":"s","body":"b","receiverEmail":null}`,
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			email, err := NormalizeResponse(raw, "   ")

			assert.Nil(t, email)
			assert.Equal(t, apperrors.KindRecipient, apperrors.KindOf(err))
		})
	}
}

func TestNormalizeResponseMissingRequiredFields(t *testing.T) {
	tests := map[string]string{
		"no subject":    `{"body":"b","receiverEmail":"hr@acme.com"}`,
		"no body":       `{"subject":"s","receiverEmail":"hr@acme.com"}`,
		"blank subject": `{"subject":"  ","body":"b","receiverEmail":"hr@acme.com"}`,
		"blank body":    `{"subject":"s","body":" \n ","receiverEmail":"hr@acme.com"}`,
		"null subject":  `{"subject":null,"body":"b","receiverEmail":"hr@acme.com"}`,
		"empty object":  `{}`,
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			email, err := NormalizeResponse(raw, "jobs@foo.com")

			assert.Nil(t, email)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
			assert.Equal(t, "generated content missing required fields", apperrors.PublicMessage(err))
		})
	}
}

func TestNormalizeResponseNullFields(t *testing.T) {
	t.Run("null signature", func(t *testing.T) {
		email, err := NormalizeResponse(`{"subject":"s","body":"b","signature":null,"receiverEmail":"hr@acme.com"}`, "")

		require.NoError(t, err)
		assert.Empty(t, email.Signature)
		assert.Equal(t, "hr@acme.com", email.ReceiverEmail)
	})

	t.Run("null recipient with explicit", func(t *testing.T) {
		email, err := NormalizeResponse(`{"subject":"s","body":"b","signature":null,"receiverEmail":null}`, "jobs@foo.com")

		require.NoError(t, err)
		assert.Equal(t, "jobs@foo.com", email.ReceiverEmail)
	})
}

func TestNormalizeResponseMalformed(t *testing.T) {
	tests := map[string]string{
		"prose":         "Sure! Here is your email.",
		"truncated":     `{"subject":"s","body":`,
		"array":         `[{"subject":"s"}]`,
		"wrong type":    `{"subject":42,"body":"b","receiverEmail":"hr@acme.com"}`,
		"unknown field": `{"subject":"s","body":"b","receiverEmail":"hr@acme.com","cc":"boss@acme.com"}`,
		"empty":         "",
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			email, err := NormalizeResponse(raw, "")

			assert.Nil(t, email)
			assert.Equal(t, apperrors.KindParse, apperrors.KindOf(err))
		})
	}
}

func TestNormalizeResponseKeepsRecipientVerbatim(t *testing.T) {
	email, err := NormalizeResponse(`{"subject":"s","body":"b","receiverEmail":"careers at acme dot com"}`, "")

	require.NoError(t, err)
	assert.Equal(t, "careers at acme dot com", email.ReceiverEmail)
}
