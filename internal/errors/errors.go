// Package errors provides a lightweight structured error type (SitetoolsError)
// for category-based classification across the CLI and the processing packages.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory represents the category of a sitetools error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Text-processing errors
	CategoryNavigation ErrorCategory = "navigation"
	CategoryTemplate   ErrorCategory = "template"
	CategoryInject     ErrorCategory = "inject"
	CategoryMerge      ErrorCategory = "merge"

	// Runtime and infrastructure errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryInternal   ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// SitetoolsError is a structured error with category, severity, and context
type SitetoolsError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for SitetoolsError
type ContextFields map[string]any

// Error implements the error interface
func (e *SitetoolsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *SitetoolsError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *SitetoolsError) WithContext(key string, value any) *SitetoolsError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new SitetoolsError
func New(category ErrorCategory, severity ErrorSeverity, message string) *SitetoolsError {
	return &SitetoolsError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Newf creates a new SitetoolsError with a formatted message
func Newf(category ErrorCategory, severity ErrorSeverity, format string, args ...any) *SitetoolsError {
	return New(category, severity, fmt.Sprintf(format, args...))
}

// Wrap creates a new SitetoolsError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *SitetoolsError {
	return &SitetoolsError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// HasCategory reports whether err is (or wraps) a SitetoolsError of the given category.
func HasCategory(err error, category ErrorCategory) bool {
	var se *SitetoolsError
	if errors.As(err, &se) {
		return se.Category == category
	}
	return false
}
