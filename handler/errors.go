package handler

import (
	"errors"
	"net/http"
)

// Package-level errors for common failure scenarios
var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrSSENotInitialized indicates SSE was accessed before being set up for the request
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
)

// HTTPError represents an HTTP error with status code and translation key.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // Translation key (e.g., "not_found")
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError creates a custom HTTP error with the given status code and translation key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrConflict            = HTTPError{Code: http.StatusConflict, Key: "conflict"}
	ErrUnprocessableEntity = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	ErrTooManyRequests     = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrServiceUnavailable  = HTTPError{Code: http.StatusServiceUnavailable, Key: "service_unavailable"}
)
