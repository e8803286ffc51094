package model

import "errors"

// Common errors used across the application
var (
	// Member store outcomes. Not-found is an expected outcome of a lookup,
	// not a fault; callers must treat it distinctly from transport errors.
	ErrMemberNotFound = errors.New("member not found")
	ErrMemberExists   = errors.New("member already registered")

	// Validation failures, raised before any store call is issued
	ErrInvalidTCID        = errors.New("identity number must be exactly 11 digits")
	ErrInvalidPhoneNumber = errors.New("phone number must be 10 to 15 digits")
	ErrNameRequired       = errors.New("name is required")
	ErrSurnameRequired    = errors.New("surname is required")
	ErrPasswordRequired   = errors.New("password is required")

	// Session errors
	ErrSessionNotFound = errors.New("unknown session token")
)
