package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/promoclaim-go/internal/model"
	"github.com/mcoot/promoclaim-go/internal/services/adminauth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeMissingIdentity = "MISSING_IDENTITY"
	CodeInvalidIdentity = "INVALID_IDENTITY"
	CodePoolExhausted   = "POOL_EXHAUSTED"
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeInternalError   = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrMissingHandle):
		return &httpError{http.StatusBadRequest, APIError{CodeMissingIdentity, "Identity is required"}}
	case errors.Is(err, model.ErrInvalidHandle):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidIdentity, "Identity must be 1-30 letters, digits, dots or underscores, with no leading, trailing or doubled dot"}}
	case errors.Is(err, model.ErrPoolExhausted):
		return &httpError{http.StatusConflict, APIError{CodePoolExhausted, "No prizes left"}}
	case errors.Is(err, model.ErrParticipantNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeNotFound, "No participants found"}}

	// Map admin auth errors
	case errors.Is(err, adminauth.ErrInvalidPassword), errors.Is(err, adminauth.ErrNotConfigured):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Access denied"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
