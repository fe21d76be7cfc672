// Package errors provides sentinel errors for the shopgen CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrUnknownFeature indicates a category/feature pair not present in the catalog.
	ErrUnknownFeature = errors.New("unknown feature")

	// ErrRequiredFeature indicates an attempt to disable a required feature.
	ErrRequiredFeature = errors.New("required feature")

	// ErrConfigParse indicates the selection file exists but could not be parsed.
	ErrConfigParse = errors.New("config parse error")

	// ErrFilesystem indicates a filesystem operation failed.
	ErrFilesystem = errors.New("filesystem error")

	// ErrValidation indicates a validation failure.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a file or resource was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information for user-facing diagnostics.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path involved (optional).
	Location string

	// Field is the category/feature the error refers to (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewUnknownFeatureError creates an error for a feature missing from the catalog.
func NewUnknownFeatureError(category, feature string) error {
	return &DetailError{
		Type:    "unknown feature",
		Message: fmt.Sprintf("Feature '%s' in category '%s' not found.", feature, category),
		Field:   category + "/" + feature,
		Hint:    "Run 'shopgen list' to see the available features.",
		Cause:   ErrUnknownFeature,
	}
}

// NewRequiredFeatureError creates an error for an attempt to disable a required feature.
func NewRequiredFeatureError(feature string) error {
	return &DetailError{
		Type:    "required feature",
		Message: fmt.Sprintf("Cannot disable required feature '%s'.", feature),
		Field:   feature,
		Cause:   ErrRequiredFeature,
	}
}

// NewParseError creates an error for an unreadable selection file.
func NewParseError(location string, cause error) error {
	return &DetailError{
		Type:     "config parse failed",
		Message:  fmt.Sprintf("selection file is not valid JSON: %v", cause),
		Location: location,
		Hint:     "Fix the file by hand or delete it to start from the defaults.",
		Cause:    fmt.Errorf("%w: %w", ErrConfigParse, cause),
	}
}

// ExitError wraps an error with a process exit code.
type ExitError struct {
	// Err is the wrapped error.
	Err error

	// Code is the process exit code.
	Code int

	// Printed indicates the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// WrapFilesystem wraps a filesystem failure with ErrFilesystem.
func WrapFilesystem(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrFilesystem, err)
}

// WrapParse wraps a parse failure with ErrConfigParse.
func WrapParse(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrConfigParse, err)
}
