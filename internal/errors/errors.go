package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeInvalidCredentials indicates a rejected email/password pair.
	// Recovered by re-prompting the user; never retried automatically.
	ErrCodeInvalidCredentials ErrorCode = "invalid_credentials"
	// ErrCodeServerUnavailable indicates a network failure or a non-JSON
	// response from the upstream API. Safe for the user to retry manually.
	ErrCodeServerUnavailable ErrorCode = "server_unavailable"
	// ErrCodeIncompleteResponse indicates the upstream API returned 2xx but
	// omitted required fields. Treated as an upstream defect, not retried.
	ErrCodeIncompleteResponse ErrorCode = "incomplete_response"
	// ErrCodeTokenExpired indicates the session aged past its maximum age.
	ErrCodeTokenExpired ErrorCode = "token_expired"
	// ErrCodeUnauthorized indicates the bearer token was rejected by an
	// upstream endpoint (401/403) despite appearing locally valid.
	ErrCodeUnauthorized ErrorCode = "unauthorized"
	// ErrCodeForbidden indicates the caller lacks the required role.
	ErrCodeForbidden ErrorCode = "forbidden"
	// ErrCodeNotFound indicates a resource was not found upstream.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeUpstream indicates a non-2xx upstream response outside the
	// categories above; the upstream message is carried through verbatim.
	ErrCodeUpstream ErrorCode = "upstream"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "internal"
)

// AppError represents a structured application error with a code, message, and
// optional cause. It supports error wrapping for use with errors.Is/errors.As.
// All failures cross the subsystem boundary as values of this type, never as
// panics, so calling code can render messages without crashing.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the specific field that caused the error (optional, for validation errors)
	Field string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// InvalidCredentials creates an InvalidCredentials error carrying the
// upstream-provided message when present.
func InvalidCredentials(message string) *AppError {
	if message == "" {
		message = "Invalid email or password"
	}
	return &AppError{Code: ErrCodeInvalidCredentials, Message: message}
}

// ServerUnavailable creates a ServerUnavailable error.
func ServerUnavailable(message string) *AppError {
	return &AppError{Code: ErrCodeServerUnavailable, Message: message}
}

// IncompleteResponse creates an IncompleteResponse error.
func IncompleteResponse(message string) *AppError {
	return &AppError{Code: ErrCodeIncompleteResponse, Message: message}
}

// TokenExpired creates a TokenExpired error.
func TokenExpired() *AppError {
	return &AppError{Code: ErrCodeTokenExpired, Message: "session expired, please sign in again"}
}

// Unauthorized creates an Unauthorized error.
func Unauthorized(message string) *AppError {
	if message == "" {
		message = "not authorized"
	}
	return &AppError{Code: ErrCodeUnauthorized, Message: message}
}

// Forbidden creates a Forbidden error.
func Forbidden(message string) *AppError {
	return &AppError{Code: ErrCodeForbidden, Message: message}
}

// NotFound creates a NotFound error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NotFoundf creates a NotFound error with formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a Validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// ValidationField creates a Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Field: field}
}

// Upstream creates an Upstream error from a non-2xx upstream response.
func Upstream(message string) *AppError {
	if message == "" {
		message = "upstream request failed"
	}
	return &AppError{Code: ErrCodeUpstream, Message: message}
}

// Internal creates an Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// CodeOf returns the ErrorCode of err, or ErrCodeInternal when err is not an
// AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsInvalidCredentials checks if an error is an InvalidCredentials error.
func IsInvalidCredentials(err error) bool {
	return isCode(err, ErrCodeInvalidCredentials)
}

// IsServerUnavailable checks if an error is a ServerUnavailable error.
func IsServerUnavailable(err error) bool {
	return isCode(err, ErrCodeServerUnavailable)
}

// IsIncompleteResponse checks if an error is an IncompleteResponse error.
func IsIncompleteResponse(err error) bool {
	return isCode(err, ErrCodeIncompleteResponse)
}

// IsUnauthorized checks if an error is an Unauthorized error.
func IsUnauthorized(err error) bool {
	return isCode(err, ErrCodeUnauthorized)
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	return isCode(err, ErrCodeNotFound)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}
