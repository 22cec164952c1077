package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
)

// Extraction pipeline errors. Acquisition and remote failures route the
// upload to the filename fallback instead of aborting the request.
var (
	ErrInvalidFileType      = errors.New("invalid file type")
	ErrAcquisition          = errors.New("could not read pdf text")
	ErrCredentialMissing    = errors.New("remote api credential missing")
	ErrRemoteRequest        = errors.New("remote extraction request failed")
	ErrRemoteResponse       = errors.New("remote extraction response malformed")
	ErrNoExtractableContent = errors.New("no extractable content")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
