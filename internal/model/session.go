package model

import "time"

// Session is one client's authentication state. At most one of IsAdmin and
// MemberID is ever set; every guard transition preserves that invariant.
// Sessions live in process memory only and do not survive a restart.
type Session struct {
	Token     string
	IsAdmin   bool
	MemberID  TCID // empty when no member is logged in
	CreatedAt time.Time
}

// IsAnonymous reports whether neither role is logged in.
func (s *Session) IsAnonymous() bool {
	return !s.IsAdmin && s.MemberID == ""
}

// IsMember reports whether a member is logged in.
func (s *Session) IsMember() bool {
	return s.MemberID != ""
}
