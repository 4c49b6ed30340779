package hathora

import (
	"errors"
	"fmt"
)

// Error represents a Hathora API error response.
type Error struct {
	// StatusCode is the HTTP status code, or 0 for transport failures.
	StatusCode int `json:"status_code"`

	// Message is the error message extracted from the response body.
	Message string `json:"message"`

	// Response is the parsed error body, when the server returned JSON.
	Response map[string]any `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("hathora: %s (http_status=%d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("hathora: %s", e.Message)
}

// IsServerError returns true if this is a server-side error.
func (e *Error) IsServerError() bool {
	return e.StatusCode >= 500
}

// AsError extracts *Error from an error.
//
// Example:
//
//	if e, ok := hathora.AsError(err); ok {
//	    log.Printf("API error %d: %s", e.StatusCode, e.Message)
//	}
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// AuthError indicates the API rejected the configured credentials.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("hathora: %s", e.Message)
}

// AsAuthError extracts *AuthError from an error.
func AsAuthError(err error) (*AuthError, bool) {
	var e *AuthError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// ValidationError indicates a request was rejected locally before any
// network call: unknown model, unknown or mistyped parameter, or a
// malformed message list.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("hathora: %s", e.Message)
}

// AsValidationError extracts *ValidationError from an error.
func AsValidationError(err error) (*ValidationError, bool) {
	var e *ValidationError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// FileError indicates a problem with a local audio input.
type FileError struct {
	// Path is the offending file path, when known.
	Path string

	Message string
}

func (e *FileError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("hathora: %s: %s", e.Message, e.Path)
	}
	return fmt.Sprintf("hathora: %s", e.Message)
}

// AsFileError extracts *FileError from an error.
func AsFileError(err error) (*FileError, bool) {
	var e *FileError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
