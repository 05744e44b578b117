package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/justsurfingit/job-mailer/internal/apperrors"
	"github.com/justsurfingit/job-mailer/internal/models"
)

// NotSpecifiedRecipient is the placeholder some model answers use instead of an address.
const NotSpecifiedRecipient = "Not specified"

const fence = "```"

var fenceLanguage = regexp.MustCompile(`^[A-Za-z0-9_+-]*[ \t]*\r?\n`)

// generatedEmailSchema only admits the four contract fields, each a string
// or null. A null field is treated as absent. Presence of subject and body
// is checked afterwards so that a missing field is reported as a validation
// failure rather than a parse failure.
var generatedEmailSchema = mustSchema(`{
  "type": "object",
  "properties": {
    "subject":       {"type": ["string", "null"]},
    "body":          {"type": ["string", "null"]},
    "signature":     {"type": ["string", "null"]},
    "receiverEmail": {"type": ["string", "null"]}
  },
  "additionalProperties": false
}`)

func mustSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compile generated email schema: %v", err))
	}
	return schema
}

// StripCodeFences removes the markdown fence pair enclosing a model answer,
// together with any preamble before the opening fence. Fences inside the
// JSON object are kept. Text without an enclosing fence is only trimmed.
// Applying it twice gives the same result as applying it once.
func StripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	for {
		next, ok := stripEnclosingFence(s)
		if !ok || next == s {
			return s
		}
		s = next
	}
}

// stripEnclosingFence removes an opening fence that comes before the object
// starts and the last fence after the object ends.
func stripEnclosingFence(s string) (string, bool) {
	start := strings.Index(s, fence)
	if start < 0 {
		return s, false
	}
	if brace := strings.IndexByte(s, '{'); brace >= 0 && brace < start {
		return s, false
	}

	inner := s[start+len(fence):]
	if loc := fenceLanguage.FindStringIndex(inner); loc != nil {
		inner = inner[loc[1]:]
	} else if strings.HasPrefix(strings.ToLower(inner), "json") {
		inner = inner[len("json"):]
	}
	if end := strings.LastIndex(inner, fence); end >= 0 && end > strings.LastIndexByte(inner, '}') {
		inner = inner[:end]
	}
	return strings.TrimSpace(inner), true
}

// NormalizeResponse turns raw model output into a validated GeneratedEmail.
// A non-blank explicitRecipient always wins over the address the model chose.
func NormalizeResponse(raw, explicitRecipient string) (*models.GeneratedEmail, error) {
	cleaned := StripCodeFences(raw)

	result, err := generatedEmailSchema.Validate(gojsonschema.NewStringLoader(cleaned))
	if err != nil {
		return nil, apperrors.Parse(fmt.Errorf("decode model output: %w", err))
	}
	if !result.Valid() {
		return nil, apperrors.Parse(schemaError(result.Errors()))
	}

	var email models.GeneratedEmail
	if err := json.Unmarshal([]byte(cleaned), &email); err != nil {
		return nil, apperrors.Parse(fmt.Errorf("decode model output: %w", err))
	}

	if strings.TrimSpace(email.Subject) == "" || strings.TrimSpace(email.Body) == "" {
		return nil, apperrors.Validation("generated content missing required fields")
	}

	switch {
	case strings.TrimSpace(explicitRecipient) != "":
		email.ReceiverEmail = explicitRecipient
	case isPlaceholderRecipient(email.ReceiverEmail):
		return nil, apperrors.Recipient()
	}

	return &email, nil
}

func isPlaceholderRecipient(addr string) bool {
	addr = strings.TrimSpace(addr)
	return addr == "" ||
		strings.EqualFold(addr, NotSpecifiedRecipient) ||
		strings.EqualFold(addr, NoRecipientSentinel)
}

func schemaError(errs []gojsonschema.ResultError) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.String())
	}
	return errors.New("model output does not match schema: " + strings.Join(msgs, "; "))
}
