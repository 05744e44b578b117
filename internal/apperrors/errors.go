// Package apperrors defines the failure taxonomy shared by every stage of the
// application pipeline and its mapping onto HTTP status codes.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindRequest       Kind = "request_error"
	KindConfiguration Kind = "configuration_error"
	KindNotFound      Kind = "not_found"
	KindCredential    Kind = "credential_error"
	KindExtraction    Kind = "extraction_error"
	KindParse         Kind = "parse_error"
	KindValidation    Kind = "validation_error"
	KindRecipient     Kind = "recipient_error"
	KindGeneration    Kind = "generation_error"
	KindDispatch      Kind = "dispatch_error"
	KindInternal      Kind = "internal_error"
)

// Error is a classified failure. Message is safe to show to the caller;
// Err holds the underlying diagnostic and is only ever logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
	// Status overrides the default status for the kind when non-zero.
	Status int
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

var (
	Request = func(message string) *Error { return New(KindRequest, message) }
	// UnsupportedMedia is a request error answered with 415.
	UnsupportedMedia = func(message string) *Error {
		return &Error{Kind: KindRequest, Message: message, Status: http.StatusUnsupportedMediaType}
	}
	Configuration = func(message string) *Error { return New(KindConfiguration, message) }
	NotFound      = func(message string) *Error { return New(KindNotFound, message) }
	Credential    = func(message string, err error) *Error { return Wrap(KindCredential, message, err) }
	Extraction    = func(err error) *Error { return Wrap(KindExtraction, "failed to extract resume text", err) }
	Parse         = func(err error) *Error { return Wrap(KindParse, "failed to parse generated content", err) }
	Validation    = func(message string) *Error { return New(KindValidation, message) }
	Recipient     = func() *Error {
		return New(KindRecipient, "no recipient found in job post, please supply one")
	}
	Generation = func(err error) *Error { return Wrap(KindGeneration, "error generating email with AI", err) }
	Dispatch   = func(err error) *Error { return Wrap(KindDispatch, "error sending email", err) }
	Internal   = func(err error) *Error { return Wrap(KindInternal, "an unexpected error occurred", err) }
)

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf reports the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus returns the status code an API handler should answer with.
func HTTPStatus(err error) int {
	appErr, ok := As(err)
	if !ok {
		return http.StatusInternalServerError
	}
	if appErr.Status != 0 {
		return appErr.Status
	}
	switch appErr.Kind {
	case KindRequest, KindConfiguration, KindCredential, KindRecipient:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindExtraction:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the text a caller may see for err.
func PublicMessage(err error) string {
	if appErr, ok := As(err); ok {
		return appErr.Message
	}
	return "an unexpected error occurred"
}
