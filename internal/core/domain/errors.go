// Package domain defines the core domain models for the task service.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error code.
// Codes follow the pattern TMS-<AREA>-<NNNN>; the numeric part hints at the
// HTTP status the API boundary maps the error to.
type DomainError struct {
	Code    string // Error code (e.g., "TMS-TASK-4040")
	Message string // Human-readable message, safe to return to clients
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

// Is implements errors.Is() support; two domain errors match on Code.
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
// If code is empty, it only checks whether the error is a DomainError.
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

// Validation errors (VAL). The message of a validation error names the first
// failing field; construct per-field instances with NewValidationError.
var (
	// ErrValidation is the generic validation failure.
	ErrValidation = NewDomainError("TMS-VAL-4000", "Validation failed")
)

// NewValidationError creates a field-specific validation error sharing the
// TMS-VAL-4000 code so all validation failures map to the same status.
func NewValidationError(message string) *DomainError {
	return NewDomainError("TMS-VAL-4000", message)
}

// User errors (USER).
var (
	// ErrDuplicateEmail indicates a registration with an already-used email.
	ErrDuplicateEmail = NewDomainError("TMS-USER-4090", "Email already registered")

	// ErrUserNotFound indicates the requested user was not found.
	// Internal only: credential verification collapses it into
	// ErrInvalidCredentials before it reaches the API boundary.
	ErrUserNotFound = NewDomainError("TMS-USER-4040", "User not found")
)

// Authentication errors (AUTH).
var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = NewDomainError("TMS-AUTH-4010", "Invalid email or password")

	// ErrTokenRequired indicates no bearer token was supplied.
	ErrTokenRequired = NewDomainError("TMS-AUTH-4011", "Access token required")
)

// Token errors (TOKN). Both carry the same client-facing message; the codes
// stay distinct so tests and logs can tell a parse failure from an expiry.
var (
	// ErrTokenMalformed indicates the token cannot be parsed or its
	// signature does not match.
	ErrTokenMalformed = NewDomainError("TMS-TOKN-4030", "Invalid or expired token")

	// ErrTokenExpired indicates the token's validity window has passed.
	ErrTokenExpired = NewDomainError("TMS-TOKN-4031", "Invalid or expired token")
)

// Task errors (TASK).
var (
	// ErrTaskNotFound covers both a missing task id and a task owned by
	// someone else; the two cases are deliberately indistinguishable.
	ErrTaskNotFound = NewDomainError("TMS-TASK-4040", "Task not found")
)

// System errors (SYS).
var (
	// ErrInternal indicates an unexpected failure; details never leak to clients.
	ErrInternal = NewDomainError("TMS-SYS-5000", "Internal server error")
)
