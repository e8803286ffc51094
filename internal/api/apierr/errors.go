package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dernekapp/memberregistry-go/internal/model"
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
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidTCID        = "INVALID_TC_ID"
	CodeInvalidPhoneNumber = "INVALID_PHONE_NUMBER"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeMemberNotFound     = "MEMBER_NOT_FOUND"
	CodeMemberExists       = "MEMBER_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternalError      = "INTERNAL_ERROR"
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
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrMemberNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMemberNotFound, "Member not found"}}
	case errors.Is(err, model.ErrMemberExists):
		return &httpError{http.StatusConflict, APIError{CodeMemberExists, "This identity number is already registered"}}
	case errors.Is(err, model.ErrInvalidTCID):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidTCID, "Identity number must be exactly 11 digits"}}
	case errors.Is(err, model.ErrInvalidPhoneNumber):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPhoneNumber, "Phone number must be 10 to 15 digits"}}
	case errors.Is(err, model.ErrNameRequired),
		errors.Is(err, model.ErrSurnameRequired),
		errors.Is(err, model.ErrPasswordRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, err.Error()}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid session"}}

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

// NewForbiddenError creates a forbidden error
func NewForbiddenError() error {
	return &httpError{http.StatusForbidden, APIError{CodeForbidden, "Not allowed for this session"}}
}

// NewInvalidCredentialsError creates an authentication-failure error
func NewInvalidCredentialsError(message string) error {
	return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
