package errors

import (
	stderrors "errors"
	"fmt"
)

// GstanzlError is the structured error type for gstanzl.
// It carries enough context for logging to the diagnostic channel and for
// concise CLI presentation.
type GstanzlError struct {
	// Code is the unique error code (e.g., "ERR_201_CATALOG_NOT_FOUND").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, Catalog, Internal).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *GstanzlError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GstanzlError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with GstanzlError.
func (e *GstanzlError) Is(target error) bool {
	if t, ok := target.(*GstanzlError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *GstanzlError) WithDetail(key, value string) *GstanzlError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
func (e *GstanzlError) WithSuggestion(suggestion string) *GstanzlError {
	e.Suggestion = suggestion
	return e
}

// New creates a new GstanzlError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *GstanzlError {
	return &GstanzlError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a GstanzlError from an existing error.
// The error's message becomes the GstanzlError message.
func Wrap(code string, err error) *GstanzlError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *GstanzlError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// CatalogError creates a catalog-unavailable error with the location attached.
func CatalogError(code, location, message string, cause error) *GstanzlError {
	return New(code, message, cause).WithDetail("location", location)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *GstanzlError {
	return New(ErrCodeInternal, message, cause)
}

// IsCatalogUnavailable reports whether err, or anything it wraps, is a
// catalog-unavailable error.
func IsCatalogUnavailable(err error) bool {
	return GetCategory(err) == CategoryCatalog
}

// GetCode extracts the error code from a GstanzlError anywhere in the chain.
// Returns empty string if there is none.
func GetCode(err error) string {
	var ge *GstanzlError
	if stderrors.As(err, &ge) {
		return ge.Code
	}
	return ""
}

// GetCategory extracts the category from a GstanzlError anywhere in the chain.
func GetCategory(err error) Category {
	var ge *GstanzlError
	if stderrors.As(err, &ge) {
		return ge.Category
	}
	return ""
}
