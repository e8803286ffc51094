package handler

import (
	"net/http"

	"github.com/dernekapp/memberregistry-go/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest     = apierr.CodeInvalidRequest
	CodeInvalidTCID        = apierr.CodeInvalidTCID
	CodeInvalidPhoneNumber = apierr.CodeInvalidPhoneNumber
	CodeUnauthorized       = apierr.CodeUnauthorized
	CodeForbidden          = apierr.CodeForbidden
	CodeMemberNotFound     = apierr.CodeMemberNotFound
	CodeMemberExists       = apierr.CodeMemberExists
	CodeInvalidCredentials = apierr.CodeInvalidCredentials
	CodeInternalError      = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError() error {
	return apierr.NewForbiddenError()
}

// NewInvalidCredentialsError creates an authentication-failure error
func NewInvalidCredentialsError(message string) error {
	return apierr.NewInvalidCredentialsError(message)
}
