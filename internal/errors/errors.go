// Package errors provides custom error types and exit codes for rootanchor.
package errors

import (
	"errors"
	"fmt"
)

// AnchorError is a custom error type that provides context about operations.
type AnchorError struct {
	Op   string // Operation being performed (e.g., "export bundle", "fetch upstream")
	Path string // File path or URL involved
	Err  error  // Underlying error
}

// Error implements the error interface.
func (e *AnchorError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *AnchorError) Unwrap() error {
	return e.Err
}

// Predefined errors for common scenarios.
var (
	ErrInvalidPEM     = fmt.Errorf("invalid PEM format")
	ErrEmptyBundle    = fmt.Errorf("bundle is empty")
	ErrNotCertificate = fmt.Errorf("PEM block is not a certificate")
	ErrFileExists     = fmt.Errorf("file already exists")
)

// Exit codes - use these constants in CLI commands instead of hardcoding values.
const (
	ExitSuccess      = 0 // Success
	ExitGeneralError = 1 // General error (file I/O, permissions)
	ExitCertError    = 2 // Certificate error (invalid cert, malformed bundle)
	ExitNetworkError = 3 // Network error (failed to fetch upstream bundle)
)

// IsError checks if the given error matches the target error using errors.Is.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
