package model

import (
	"regexp"
	"strings"
	"time"
)

// TCID is a member's national identity number: exactly 11 ASCII digits.
// It is the member table's primary key and the member's login handle,
// write-once at registration.
type TCID string

var (
	tcIDPattern  = regexp.MustCompile(`^\d{11}$`)
	phonePattern = regexp.MustCompile(`^\d{10,15}$`)
)

// Member represents one registered person.
type Member struct {
	TCID        TCID      `json:"tc_id"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	PhoneNumber string    `json:"phone_number"`
	// CreatedAt is assigned by the store on insert and never updated.
	CreatedAt time.Time `json:"created_at"`
}

// MemberUpdate carries the mutable member fields. The identity number is
// deliberately absent: it is never part of an update payload.
type MemberUpdate struct {
	Name        string
	Surname     string
	PhoneNumber string
}

// ValidTCID reports whether id is exactly 11 digits.
func ValidTCID(id TCID) bool {
	return tcIDPattern.MatchString(string(id))
}

// ValidPhoneNumber reports whether s is 10 to 15 digits with no separators.
func ValidPhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}

// Validate checks a candidate member against the registration admission
// rules, returning the first violated rule.
func (m *Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(m.Surname) == "" {
		return ErrSurnameRequired
	}
	if !ValidTCID(m.TCID) {
		return ErrInvalidTCID
	}
	if !ValidPhoneNumber(m.PhoneNumber) {
		return ErrInvalidPhoneNumber
	}
	return nil
}

// Validate checks the mutable fields of an update.
func (u MemberUpdate) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(u.Surname) == "" {
		return ErrSurnameRequired
	}
	if !ValidPhoneNumber(u.PhoneNumber) {
		return ErrInvalidPhoneNumber
	}
	return nil
}
