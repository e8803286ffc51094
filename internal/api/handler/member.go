package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dernekapp/memberregistry-go/internal/api/middleware"
	"github.com/dernekapp/memberregistry-go/internal/api/request"
	"github.com/dernekapp/memberregistry-go/internal/api/response"
	"github.com/dernekapp/memberregistry-go/internal/model"
	"github.com/dernekapp/memberregistry-go/internal/services/member"
)

// MemberHandler handles member CRUD endpoints
type MemberHandler struct {
	members *member.Service
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *member.Service) *MemberHandler {
	return &MemberHandler{
		members: memberService,
	}
}

// Register handles POST /api/v1/members
func (h *MemberHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	candidate := &model.Member{
		TCID:        model.TCID(req.TCID),
		Name:        req.Name,
		Surname:     req.Surname,
		PhoneNumber: req.PhoneNumber,
	}

	stored, err := h.members.Register(r.Context(), candidate)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MemberFromModel(stored))
}

// List handles GET /api/v1/members
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.members.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MemberListFromModel(members))
}

// Get handles GET /api/v1/members/{tc_id}
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := pathTCID(r)
	if !canAccessMember(r, id) {
		WriteError(w, NewForbiddenError())
		return
	}

	m, err := h.members.GetByID(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MemberFromModel(m))
}

// Update handles PATCH /api/v1/members/{tc_id}
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := pathTCID(r)
	if !canAccessMember(r, id) {
		WriteError(w, NewForbiddenError())
		return
	}

	var req request.UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	updated, err := h.members.Update(r.Context(), id, model.MemberUpdate{
		Name:        req.Name,
		Surname:     req.Surname,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MemberFromModel(updated))
}

// Delete handles DELETE /api/v1/members/{tc_id}
func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := pathTCID(r)
	if !canAccessMember(r, id) {
		WriteError(w, NewForbiddenError())
		return
	}

	if err := h.members.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// pathTCID reads the identity number path variable
func pathTCID(r *http.Request) model.TCID {
	return model.TCID(mux.Vars(r)["tc_id"])
}

// canAccessMember allows an admin session to touch any record and a member
// session to touch only its own
func canAccessMember(r *http.Request, id model.TCID) bool {
	session := middleware.MustGetSession(r.Context())
	return session.IsAdmin || (session.MemberID != "" && session.MemberID == id)
}
