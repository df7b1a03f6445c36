package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Ingestion errors. Each one skips the smallest enclosing unit (session
// directory, annotation file or segment) except ErrIntegrity, which aborts
// the import run.
var (
	ErrSessionParse       = errors.New("unparseable session name")
	ErrDuplicateSession   = errors.New("duplicate session")
	ErrMissingMetadata    = errors.New("session missing from metadata")
	ErrMissingTranslation = errors.New("no translation tier")
	ErrMissingAudio       = errors.New("no paired audio file")
	ErrEmptyAudio         = errors.New("empty audio segment")
	ErrMicNumber          = errors.New("cannot determine microphone number")
	ErrIntegrity          = errors.New("integrity violation")
)

// ErrTooManyTerms is returned by the bounded search when the query has more
// comma-separated terms than allowed.
var ErrTooManyTerms = errors.New("too many search terms")

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
