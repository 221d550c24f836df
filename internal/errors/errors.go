package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound         = newSentinel(ErrCodeNotFound, "resource not found")
	ErrAlreadyExists    = newSentinel(ErrCodeAlreadyExists, "resource already exists")
	ErrValidation       = newSentinel(ErrCodeValidation, "validation error")
	ErrInvalidOperation = newSentinel(ErrCodeInvalidOperation, "invalid operation")
	ErrSystem           = newSentinel(ErrCodeSystemError, "system error")
)

const (
	ErrCodeSystemError      = "system_error"
	ErrCodeNotFound         = "not_found"
	ErrCodeAlreadyExists    = "already_exists"
	ErrCodeValidation       = "validation_error"
	ErrCodeInvalidOperation = "invalid_operation"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Op      string // Logical operation name
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

// newSentinel creates a new InternalError used as a markable sentinel
func newSentinel(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidOperation checks if an error is an invalid operation error
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}
