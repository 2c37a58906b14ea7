// Package domain defines the core domain models for postmask.
package domain

import (
	"errors"
	"fmt"
)

// DomainError is an error carrying a stable code.
// Codes have the form PM-<AREA>-<NNNN>.
type DomainError struct {
	Code    string // Error code (e.g., "PM-INPUT-4000")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches any DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, any DomainError matches.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Input errors.
var (
	// ErrInvalidToken indicates a token has characters outside [0-9A-Za-z+=/].
	ErrInvalidToken = NewDomainError("PM-INPUT-4000", "token has characters outside the key alphabet")

	// ErrEmptyInput indicates there was nothing to encode or scan.
	ErrEmptyInput = NewDomainError("PM-INPUT-4001", "empty input")

	// ErrInputTooLarge indicates a post exceeded the configured size limit.
	ErrInputTooLarge = NewDomainError("PM-INPUT-4130", "input too large")
)

// System errors.
var (
	// ErrReadSource indicates a post source could not be read.
	ErrReadSource = NewDomainError("PM-IO-5000", "read source failed")

	// ErrWriteOutput indicates results could not be written.
	ErrWriteOutput = NewDomainError("PM-IO-5001", "write output failed")
)
