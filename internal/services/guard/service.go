package guard

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"sync"

	"github.com/dernekapp/memberregistry-go/internal/dependencies/clock"
	"github.com/dernekapp/memberregistry-go/internal/kvstore"
	"github.com/dernekapp/memberregistry-go/internal/model"
	"github.com/dernekapp/memberregistry-go/internal/storage"
)

// DefaultAdminPassword is the credential seeded on first run.
const DefaultAdminPassword = "admin"

// adminPasswordKey is the credential's key in the key/value store.
const adminPasswordKey = "admin_password"

// Service owns session state and both login flows. Each token maps to one
// session; every transition keeps the admin flag and the member id mutually
// exclusive. Sessions are process-local and vanish on restart; only the
// admin credential is persisted, behind the key/value port.
type Service struct {
	members     storage.MemberStore
	credentials kvstore.Store
	clock       clock.Clock
	logger      *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*model.Session
}

// New creates a new guard service
func New(members storage.MemberStore, credentials kvstore.Store, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		members:     members,
		credentials: credentials,
		clock:       clk,
		logger:      logger,
		sessions:    make(map[string]*model.Session),
	}
}

// EnsureDefaultPassword seeds the default admin credential if none is stored
func (s *Service) EnsureDefaultPassword(ctx context.Context) error {
	_, err := s.credentials.Get(ctx, adminPasswordKey)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return s.credentials.Set(ctx, adminPasswordKey, DefaultAdminPassword)
	}
	return err
}

// CreateSession starts a new anonymous session
func (s *Service) CreateSession() *model.Session {
	session := &model.Session{
		Token:     generateToken(),
		CreatedAt: s.clock.Now(),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	snapshot := *session
	s.mu.Unlock()

	return &snapshot
}

// GetSession returns a snapshot of the session for a token. Callers get a
// copy, so a concurrent transition on the same token can never race with
// their reads; re-fetch to observe a state change.
func (s *Service) GetSession(token string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	snapshot := *session
	return &snapshot, nil
}

// lookup returns the live session record. The pointer is shared state and
// must only be read or written under s.mu.
func (s *Service) lookup(token string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

// LoginAdmin compares the supplied password against the persisted admin
// credential with plain string equality. On a match the session becomes an
// admin session and any member login is cleared; on a mismatch the session
// is left untouched. The check is local: no member store call is made.
func (s *Service) LoginAdmin(ctx context.Context, token, password string) (bool, error) {
	session, err := s.lookup(token)
	if err != nil {
		return false, err
	}

	stored, err := s.adminPassword(ctx)
	if err != nil {
		return false, err
	}
	if password != stored {
		return false, nil
	}

	s.mu.Lock()
	session.IsAdmin = true
	session.MemberID = ""
	s.mu.Unlock()

	s.logger.Info("admin logged in")
	return true, nil
}

// LogoutAdmin clears the admin flag only
func (s *Service) LogoutAdmin(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[token]; ok {
		session.IsAdmin = false
	}
}

// LoginMember logs a session in as the member with the given identity
// number. Knowing a valid identity number is the whole credential: if the
// member exists the login succeeds. A malformed id is rejected before the
// store lookup; an absent member is a plain false, and only other store
// errors are surfaced. A fault leaves the session unchanged.
func (s *Service) LoginMember(ctx context.Context, token string, id model.TCID) (bool, error) {
	session, err := s.lookup(token)
	if err != nil {
		return false, err
	}

	if !model.ValidTCID(id) {
		return false, nil
	}

	if _, err := s.members.GetMember(ctx, id); err != nil {
		if errors.Is(err, model.ErrMemberNotFound) {
			return false, nil
		}
		return false, err
	}

	s.mu.Lock()
	session.MemberID = id
	session.IsAdmin = false
	s.mu.Unlock()

	s.logger.Info("member logged in", slog.String("tc_id", string(id)))
	return true, nil
}

// LogoutMember clears the member id only
func (s *Service) LogoutMember(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[token]; ok {
		session.MemberID = ""
	}
}

// ChangeAdminPassword overwrites the persisted credential unconditionally.
// Sessions already logged in are unaffected; only future logins see the
// new value.
func (s *Service) ChangeAdminPassword(ctx context.Context, newPassword string) error {
	if newPassword == "" {
		return model.ErrPasswordRequired
	}
	if err := s.credentials.Set(ctx, adminPasswordKey, newPassword); err != nil {
		return err
	}

	s.logger.Info("admin password changed")
	return nil
}

// adminPassword reads the stored credential, falling back to the default
// when the key has never been written
func (s *Service) adminPassword(ctx context.Context) (string, error) {
	stored, err := s.credentials.Get(ctx, adminPasswordKey)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return DefaultAdminPassword, nil
	}
	if err != nil {
		return "", err
	}
	return stored, nil
}

// generateToken generates a random session token
func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
