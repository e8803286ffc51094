package response

import (
	"time"

	"github.com/dernekapp/memberregistry-go/internal/model"
)

// Member represents a member in API responses
type Member struct {
	TCID        string    `json:"tc_id"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}

// MemberFromModel converts a model.Member to a response Member
func MemberFromModel(m *model.Member) Member {
	return Member{
		TCID:        string(m.TCID),
		Name:        m.Name,
		Surname:     m.Surname,
		PhoneNumber: m.PhoneNumber,
		CreatedAt:   m.CreatedAt,
	}
}

// MemberList is the response for the member listing
type MemberList struct {
	Members []Member `json:"members"`
}

// MemberListFromModel converts a slice of model members
func MemberListFromModel(members []*model.Member) MemberList {
	out := make([]Member, len(members))
	for i, m := range members {
		out[i] = MemberFromModel(m)
	}
	return MemberList{Members: out}
}

// Session is the session state returned to the view layer. A client decides
// route guarding from is_admin and member_id.
type Session struct {
	SessionToken string `json:"session_token"`
	IsAdmin      bool   `json:"is_admin"`
	MemberID     string `json:"member_id,omitempty"`
}

// SessionFromModel converts a model.Session to a response Session
func SessionFromModel(s *model.Session) Session {
	return Session{
		SessionToken: s.Token,
		IsAdmin:      s.IsAdmin,
		MemberID:     string(s.MemberID),
	}
}
