package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeUpstream
	ErrorTypeConfig
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND"
	case ErrorTypeUpstream:
		return "UPSTREAM_ERROR"
	case ErrorTypeConfig:
		return "CONFIG_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// AppError is the single error shape that crosses package boundaries.
// StatusCode and StatusText are only set for upstream responses.
type AppError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	StatusText string
	Cause      error
}

func (e *AppError) Error() string {
	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: %d %s", msg, e.StatusCode, e.StatusText)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewValidationError(message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Message: message}
}

func NewConfigError(message string) *AppError {
	return &AppError{Type: ErrorTypeConfig, Message: message}
}

func NewUpstreamError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeUpstream, Message: message, Cause: cause}
}

// NewUpstreamStatusError records a non-success provider response.
func NewUpstreamStatusError(message string, statusCode int, statusText string) *AppError {
	return &AppError{
		Type:       ErrorTypeUpstream,
		Message:    message,
		StatusCode: statusCode,
		StatusText: statusText,
	}
}

func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

func IsValidation(err error) bool { return TypeOf(err) == ErrorTypeValidation }
func IsNotFound(err error) bool   { return TypeOf(err) == ErrorTypeNotFound }
func IsUpstream(err error) bool   { return TypeOf(err) == ErrorTypeUpstream }
func IsConfig(err error) bool     { return TypeOf(err) == ErrorTypeConfig }

// PublicMessage is the text an API client sees for err. Causes stay internal.
func PublicMessage(err error) string {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return "internal server error"
	}
	if appErr.StatusCode != 0 {
		return fmt.Sprintf("%s: %d %s", appErr.Message, appErr.StatusCode, appErr.StatusText)
	}
	return appErr.Message
}

// HTTPStatus maps an error to the status code the API answers with.
func HTTPStatus(err error) int {
	switch TypeOf(err) {
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
