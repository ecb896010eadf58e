// Package errors provides a lightweight structured error type (RunError)
// for category-based classification and exit-code mapping in the CLI.
package errors

import (
	"fmt"
)

// ErrorCategory classifies a RunError for exit-code mapping and reporting.
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Per-source read failures: recoverable, the run may continue with the
	// next source.
	CategorySource ErrorCategory = "source"

	// Output sink failures
	CategoryOutput ErrorCategory = "output"

	// Resource exhaustion: never recovered, terminates the process.
	CategoryResource ErrorCategory = "resource"

	// Programming-contract violations
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// RunError is a structured error with category, severity, and context.
type RunError struct {
	Category ErrorCategory
	Severity ErrorSeverity
	Message  string
	Cause    error
	Context  ContextFields
}

// ContextFields carries structured context for RunError.
type ContextFields map[string]any

// Error implements the error interface.
func (e *RunError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling.
func (e *RunError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error.
func (e *RunError) WithContext(key string, value any) *RunError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new RunError.
func New(category ErrorCategory, severity ErrorSeverity, message string) *RunError {
	return &RunError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new RunError that wraps an existing error.
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *RunError {
	return &RunError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// Recoverable reports whether the run may continue past this error. Only
// per-source read failures are recoverable; everything else ends the run.
func (e *RunError) Recoverable() bool {
	return e.Category == CategorySource
}
