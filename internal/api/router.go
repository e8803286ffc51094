package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dernekapp/memberregistry-go/internal/api/apierr"
	"github.com/dernekapp/memberregistry-go/internal/api/handler"
	apimiddleware "github.com/dernekapp/memberregistry-go/internal/api/middleware"
	"github.com/dernekapp/memberregistry-go/internal/middleware"
	"github.com/dernekapp/memberregistry-go/internal/services/guard"
	"github.com/dernekapp/memberregistry-go/internal/services/member"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	Guard         *guard.Service
	MemberService *member.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	sessionHandler := handler.NewSessionHandler(cfg.Guard)
	memberHandler := handler.NewMemberHandler(cfg.MemberService)

	sessionMiddleware := apimiddleware.Session(cfg.Guard)
	adminOnly := apimiddleware.AdminOnly()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger, panicHandler)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Open routes: registration and the two logins. Logins transition an
	// existing session when a token is presented, or start a fresh one.
	api.HandleFunc("/members", memberHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/admin/login", sessionHandler.AdminLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/member/login", sessionHandler.MemberLogin).Methods(http.MethodPost)

	// Session-scoped auth routes
	authed := api.PathPrefix("/auth").Subrouter()
	authed.Use(sessionMiddleware)
	authed.HandleFunc("/session", sessionHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/admin/logout", sessionHandler.AdminLogout).Methods(http.MethodPost)
	authed.HandleFunc("/member/logout", sessionHandler.MemberLogout).Methods(http.MethodPost)
	authed.Handle("/admin/password",
		adminOnly(http.HandlerFunc(sessionHandler.ChangePassword))).Methods(http.MethodPut)

	// Member routes: listing is admin-only, record access is checked
	// per-record (admin or the owning member)
	members := api.PathPrefix("/members").Subrouter()
	members.Use(sessionMiddleware)
	members.Handle("", adminOnly(http.HandlerFunc(memberHandler.List))).Methods(http.MethodGet)
	members.HandleFunc("/{tc_id}", memberHandler.Get).Methods(http.MethodGet)
	members.HandleFunc("/{tc_id}", memberHandler.Update).Methods(http.MethodPatch)
	members.HandleFunc("/{tc_id}", memberHandler.Delete).Methods(http.MethodDelete)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func panicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
