package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode is a machine readable error identifier
type ErrorCode string

// String returns the code as a string
func (c ErrorCode) String() string {
	return string(c)
}

// Error codes
const (
	ErrorCode_INTERNAL            ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT    ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_INVALID_PAYLOAD     ErrorCode = "INVALID_PAYLOAD"
	ErrorCode_NOT_FOUND           ErrorCode = "NOT_FOUND"
	ErrorCode_ALREADY_EXISTS      ErrorCode = "ALREADY_EXISTS"
	ErrorCode_PERMISSION_DENIED   ErrorCode = "PERMISSION_DENIED"
	ErrorCode_UNAUTHENTICATED     ErrorCode = "UNAUTHENTICATED"
	ErrorCode_RATE_LIMITED        ErrorCode = "RATE_LIMITED"
	ErrorCode_AUTH_INVALID_TOKEN  ErrorCode = "AUTH_INVALID_TOKEN"
	ErrorCode_AUTH_TOKEN_EXPIRED  ErrorCode = "AUTH_TOKEN_EXPIRED"
	ErrorCode_AUTH_BAD_CREDS      ErrorCode = "AUTH_INVALID_CREDENTIALS"
	ErrorCode_TRANSCRIPTION       ErrorCode = "TRANSCRIPTION_FAILED"
	ErrorCode_UNSUPPORTED_FILE    ErrorCode = "UNSUPPORTED_FILE"
	ErrorCode_EXPORT_FAILED       ErrorCode = "EXPORT_FAILED"
	ErrorCode_STORAGE_FAILED      ErrorCode = "STORAGE_FAILED"
	ErrorCode_DB_QUERY_FAILED     ErrorCode = "DB_QUERY_FAILED"
	ErrorCode_MODEL_UNAVAILABLE   ErrorCode = "MODEL_UNAVAILABLE"
	ErrorCode_TRANSCRIPT_TOO_LONG ErrorCode = "TRANSCRIPT_TOO_LONG"
)

// AppError is the error envelope returned by every handler
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped error
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrAlreadyExists(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_ALREADY_EXISTS,
		Message:  fmt.Sprintf("%s already exists", resource),
	}
}

func ErrPermissionDenied(action string) AppError {
	return AppError{
		HTTPCode: http.StatusForbidden,
		Code:     ErrorCode_PERMISSION_DENIED,
		Message:  fmt.Sprintf("Permission denied: %s", action),
	}
}

func ErrUnauthenticated() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_UNAUTHENTICATED,
		Message:  "Authentication required",
	}
}

func ErrRateLimited(retryAfter time.Duration) AppError {
	return AppError{
		HTTPCode: http.StatusTooManyRequests,
		Code:     ErrorCode_RATE_LIMITED,
		Message:  "Too many requests",
	}.WithDetail("retry_after", retryAfter.String())
}

// Authentication Errors
func ErrInvalidToken() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_AUTH_INVALID_TOKEN,
		Message:  "Invalid authentication token",
	}
}

func ErrTokenExpired() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_AUTH_TOKEN_EXPIRED,
		Message:  "Authentication token has expired",
	}
}

func ErrInvalidCredentials() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_AUTH_BAD_CREDS,
		Message:  "Invalid email or password",
	}
}

func ErrUserAlreadyExists(email string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_ALREADY_EXISTS,
		Message:  "User already exists",
	}.WithDetail("email", email)
}

// Processing Errors
func ErrTranscriptionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_TRANSCRIPTION,
		Message:  "Audio transcription failed",
	}
}

func ErrUnsupportedFile(extension string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_UNSUPPORTED_FILE,
		Message:  "Unsupported file type",
	}.WithDetail("extension", extension)
}

func ErrTranscriptTooLong(maxChars int) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_TRANSCRIPT_TOO_LONG,
		Message:  fmt.Sprintf("Transcript exceeds the maximum length of %d characters", maxChars),
	}
}

func ErrModelUnavailable() AppError {
	return AppError{
		HTTPCode: http.StatusServiceUnavailable,
		Code:     ErrorCode_MODEL_UNAVAILABLE,
		Message:  "Generative model is not configured",
	}
}

func ErrExportFailed(format string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_EXPORT_FAILED,
		Message:  "Failed to export report",
	}.WithDetail("format", format)
}

func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}

// Database Errors
func ErrDBQueryFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_QUERY_FAILED,
		Message:  "Database query failed",
	}
}
