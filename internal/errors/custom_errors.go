package errors

import (
	"fmt"

	"homeinsight-analyzer/internal/models"
)

// AppError represents a structured application error with user-friendly and technical details.
type AppError struct {
	Message       string
	Code          string
	HTTPStatus    int
	NearbyZips    []models.NearbyCandidate
	OriginalError error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.OriginalError != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.OriginalError)
	}
	return e.Message
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// Common error codes
const (
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeRequestFailed      = "REQUEST_FAILED"
)

// NewRequestError wraps a transport or decoding failure.
func NewRequestError(message string, originalErr error) *AppError {
	return &AppError{
		Message:       message,
		Code:          ErrCodeRequestFailed,
		OriginalError: originalErr,
	}
}

// NewServerError represents a non-2xx response carrying a structured error body.
func NewServerError(message, code string, status int) *AppError {
	return &AppError{
		Message:    message,
		Code:       code,
		HTTPStatus: status,
	}
}

// NewNotFoundError represents a failed lookup, optionally carrying
// nearby ZIP codes the backend found data for.
func NewNotFoundError(message string, status int, nearby []models.NearbyCandidate) *AppError {
	return &AppError{
		Message:    message,
		Code:       ErrCodeNotFound,
		HTTPStatus: status,
		NearbyZips: nearby,
	}
}
