package errors

import (
	"fmt"
	"net/http"

	"television/internal/errors"
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
	return e.message
}

// Is matches any BaseError carrying the same business code, so copies made by WithDetails
// still satisfy errors.Is against the predefined value.
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

// Predefined error types
var (
	// Session errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"invalid or expired session",
		"",
	)

	ErrDemoModeReadOnly = NewBaseError(
		http.StatusForbidden,
		"DEMO_MODE_READ_ONLY",
		"demo sessions cannot change provider connections",
		"",
	)

	// Provider errors
	ErrUnsupportedProvider = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_PROVIDER",
		"unsupported provider",
		"",
	)

	ErrProviderNotConnected = NewBaseError(
		http.StatusNotFound,
		"PROVIDER_NOT_CONNECTED",
		"provider is not connected",
		"",
	)

	ErrProviderNotToggleable = NewBaseError(
		http.StatusBadRequest,
		"PROVIDER_REQUIRES_OAUTH",
		"this provider is connected through its authorization flow",
		"",
	)

	// OAuth flow errors
	ErrInvalidOAuthRequest = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OAUTH_REQUEST",
		"missing authorization parameters",
		"",
	)

	ErrInvalidOAuthState = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OAUTH_STATE",
		"authorization state mismatch",
		"",
	)

	ErrOAuthProviderDenied = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_PROVIDER_DENIED",
		"the provider denied the authorization request",
		"",
	)

	ErrPendingStateNotFound = NewBaseError(
		http.StatusNotFound,
		"PENDING_STATE_NOT_FOUND",
		"no pending authorization for this provider",
		"",
	)

	// Deep link errors
	ErrUnsupportedDeepLink = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_DEEP_LINK",
		"deep link scheme is not supported",
		"",
	)

	ErrQRCodeGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"QRCODE_GENERATION_FAILED",
		"failed to generate QR code",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// UpstreamKind names the provider call that failed
type UpstreamKind string

const (
	UpstreamTokenExchange UpstreamKind = "TOKEN_EXCHANGE_FAILED"
	UpstreamTokenRefresh  UpstreamKind = "TOKEN_REFRESH_FAILED"
	UpstreamProfileFetch  UpstreamKind = "PROFILE_FETCH_FAILED"
	UpstreamContentFetch  UpstreamKind = "CONTENT_FETCH_FAILED"
)

// UpstreamError reports a failed or non-success call to a provider endpoint.
// StatusCode is zero when no response was received (timeout, connection error).
type UpstreamError struct {
	kind       UpstreamKind
	provider   string
	statusCode int
	err        error
}

// NewTokenExchangeError creates the error for a failed authorization code exchange
func NewTokenExchangeError(provider string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{kind: UpstreamTokenExchange, provider: provider, statusCode: statusCode, err: err}
}

// NewTokenRefreshError creates the error for a failed refresh grant
func NewTokenRefreshError(provider string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{kind: UpstreamTokenRefresh, provider: provider, statusCode: statusCode, err: err}
}

// NewProfileFetchError creates the error for a failed user profile request
func NewProfileFetchError(provider string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{kind: UpstreamProfileFetch, provider: provider, statusCode: statusCode, err: err}
}

// NewContentFetchError creates the error for a failed content request
func NewContentFetchError(provider string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{kind: UpstreamContentFetch, provider: provider, statusCode: statusCode, err: err}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.provider, e.kind)
	if e.statusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.statusCode)
	}
	if e.err != nil {
		msg = msg + ": " + e.err.Error()
	}

	return msg
}

// Unwrap exposes the transport error, if any
func (e *UpstreamError) Unwrap() error {
	return e.err
}

// Kind returns which provider call failed
func (e *UpstreamError) Kind() UpstreamKind {
	return e.kind
}

// Provider returns the provider id
func (e *UpstreamError) Provider() string {
	return e.provider
}

// StatusCode returns the upstream HTTP status, or zero
func (e *UpstreamError) StatusCode() int {
	return e.statusCode
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return string(e.kind)
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return "the streaming provider could not complete the request"
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return e.Error()
}

// IsUpstreamKind reports whether err carries an UpstreamError of the given kind.
func IsUpstreamKind(err error, kind UpstreamKind) bool {
	upstream, ok := errors.AsType[*UpstreamError](err)

	return ok && upstream.kind == kind
}
