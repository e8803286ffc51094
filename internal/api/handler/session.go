package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dernekapp/memberregistry-go/internal/api/middleware"
	"github.com/dernekapp/memberregistry-go/internal/api/request"
	"github.com/dernekapp/memberregistry-go/internal/api/response"
	"github.com/dernekapp/memberregistry-go/internal/model"
	"github.com/dernekapp/memberregistry-go/internal/services/guard"
)

// SessionHandler handles login, logout and credential endpoints
type SessionHandler struct {
	guard *guard.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(guardService *guard.Service) *SessionHandler {
	return &SessionHandler{
		guard: guardService,
	}
}

// AdminLogin handles POST /api/v1/auth/admin/login
func (h *SessionHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req request.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	session := h.sessionForRequest(r)

	ok, err := h.guard.LoginAdmin(r.Context(), session.Token, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}
	if !ok {
		WriteError(w, NewInvalidCredentialsError("Wrong admin password"))
		return
	}

	h.writeSession(w, session.Token)
}

// MemberLogin handles POST /api/v1/auth/member/login
func (h *SessionHandler) MemberLogin(w http.ResponseWriter, r *http.Request) {
	var req request.MemberLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	// Reject a malformed id before any store lookup
	id := model.TCID(req.TCID)
	if !model.ValidTCID(id) {
		WriteError(w, model.ErrInvalidTCID)
		return
	}

	session := h.sessionForRequest(r)

	ok, err := h.guard.LoginMember(r.Context(), session.Token, id)
	if err != nil {
		WriteError(w, err)
		return
	}
	if !ok {
		WriteError(w, NewInvalidCredentialsError("No member with this identity number"))
		return
	}

	h.writeSession(w, session.Token)
}

// AdminLogout handles POST /api/v1/auth/admin/logout
func (h *SessionHandler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	h.guard.LogoutAdmin(session.Token)
	h.writeSession(w, session.Token)
}

// MemberLogout handles POST /api/v1/auth/member/logout
func (h *SessionHandler) MemberLogout(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	h.guard.LogoutMember(session.Token)
	h.writeSession(w, session.Token)
}

// Get handles GET /api/v1/auth/session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	response.JSON(w, http.StatusOK, response.SessionFromModel(session))
}

// ChangePassword handles PUT /api/v1/auth/admin/password
func (h *SessionHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req request.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.guard.ChangeAdminPassword(r.Context(), req.NewPassword); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// sessionForRequest returns the caller's existing session when a valid
// token is presented, otherwise starts a fresh anonymous one. Logging in
// over an existing session transitions it, which is what keeps the two
// roles mutually exclusive.
func (h *SessionHandler) sessionForRequest(r *http.Request) *model.Session {
	if token := middleware.ExtractToken(r); token != "" {
		if session, err := h.guard.GetSession(token); err == nil {
			return session
		}
	}
	return h.guard.CreateSession()
}

// writeSession responds with a fresh snapshot of the token's session. The
// guard hands out copies, so state from before a transition is stale.
func (h *SessionHandler) writeSession(w http.ResponseWriter, token string) {
	session, err := h.guard.GetSession(token)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SessionFromModel(session))
}
