package errors

import (
	"fmt"
	"net/http"
	"strings"
)

var (
	// JWT and tokens
	ErrInvalidSigningMethod = fmt.Errorf("invalid token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token has expired")
	ErrTokenIsNotRefresh    = fmt.Errorf("token is not a refresh token")
	ErrTokenIsNotAccess     = fmt.Errorf("token is not an access token")

	// Authentication
	ErrEmptyAuthHeader    = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader  = fmt.Errorf("invalid authorization header format")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")

	// Context
	ErrCallerNotFoundInContext = fmt.Errorf("caller not found in request context")

	// Store
	ErrRecordNotFound = fmt.Errorf("record not found")
)

// HttpError carries the status code and the message that are safe to return
// to the client. Err keeps the underlying cause for logs only.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string { return e.Message }

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

func NewNotFoundError(message string) *HttpError {
	return &HttpError{Code: http.StatusNotFound, Message: message}
}

func NewForbiddenError(message string) *HttpError {
	return &HttpError{Code: http.StatusForbidden, Message: message}
}

// NewValidationError aggregates every field violation into a single 400
// response, joined by ", ".
func NewValidationError(violations []string) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: strings.Join(violations, ", ")}
}
