package errors

import (
	"net/http"

	"shiptrack/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on the business error code so a copy produced by WithDetails
// still satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage replaces the user-facing message, keeping code and status.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Mutation pipeline errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please fill all required fields.",
		"",
	)

	ErrShipmentNotFound = NewBaseError(
		http.StatusNotFound,
		"SHIPMENT_NOT_FOUND",
		"Shipment not found.",
		"",
	)

	// Backend errors are reported asynchronously in remote mode and
	// synchronously in local mode.
	ErrBackendFailed = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_FAILED",
		"Storage backend operation failed.",
		"",
	)

	ErrImportInvalid = NewBaseError(
		http.StatusBadRequest,
		"IMPORT_INVALID",
		"Import file must contain a JSON array of shipments.",
		"",
	)

	// Session errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Sign-in required.",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"This account is not allowed to manage shipments.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)
)

// BackendError wraps a storage failure so it can be rendered as an AppError
// while keeping the cause for logs.
type BackendError struct {
	op  string
	err error
}

// NewBackendError creates a backend error for the named operation
func NewBackendError(op string, err error) AppError {
	return &BackendError{op: op, err: err}
}

// Error implements the error interface
func (e *BackendError) Error() string {
	return errors.Wrapf(e.err, "backend %s failed", e.op).Error()
}

// Unwrap exposes the cause.
func (e *BackendError) Unwrap() error {
	return e.err
}

// Is lets errors.Is(err, ErrBackendFailed) match.
func (e *BackendError) Is(target error) bool {
	return target == ErrBackendFailed
}

// HTTPCode returns the HTTP status code
func (e *BackendError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *BackendError) ErrorCode() string {
	return ErrBackendFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *BackendError) Message() string {
	return "Failed to " + e.op + " shipment: " + e.err.Error()
}

// Details returns detailed error information
func (e *BackendError) Details() string {
	return e.err.Error()
}
