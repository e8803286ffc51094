package guard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dernekapp/memberregistry-go/internal/dependencies/mocks"
	kvmemory "github.com/dernekapp/memberregistry-go/internal/kvstore/memory"
	"github.com/dernekapp/memberregistry-go/internal/model"
	"github.com/dernekapp/memberregistry-go/internal/storage"
	"github.com/dernekapp/memberregistry-go/internal/storage/memory"
	"github.com/dernekapp/memberregistry-go/internal/testutil"
)

var errStoreDown = errors.New("store unavailable")

// faultyStore simulates a member store whose lookups fail outright
type faultyStore struct {
	storage.MemberStore
}

func (f *faultyStore) GetMember(ctx context.Context, id model.TCID) (*model.Member, error) {
	return nil, errStoreDown
}

type ServiceSuite struct {
	suite.Suite
	members     *memory.Storage
	credentials *kvmemory.Store
	service     *Service
	ctx         context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.members = memory.New(clk)
	s.credentials = kvmemory.New()
	s.service = New(s.members, s.credentials, clk, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) registerMember(id model.TCID) {
	_, err := s.members.InsertMember(s.ctx, &model.Member{
		TCID:        id,
		Name:        "Ayse",
		Surname:     "Yilmaz",
		PhoneNumber: "5551234567",
	})
	s.Require().NoError(err)
}

// getSession fetches the current state for a token
func (s *ServiceSuite) getSession(token string) *model.Session {
	session, err := s.service.GetSession(token)
	s.Require().NoError(err)
	return session
}

// Sessions

func (s *ServiceSuite) TestCreateSessionIsAnonymous() {
	session := s.service.CreateSession()
	s.NotEmpty(session.Token)
	s.True(session.IsAnonymous())
	s.False(session.IsAdmin)
	s.Empty(session.MemberID)
}

func (s *ServiceSuite) TestGetSession() {
	session := s.service.CreateSession()

	found, err := s.service.GetSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.Token, found.Token)
}

func (s *ServiceSuite) TestGetSessionUnknownToken() {
	_, err := s.service.GetSession("sess_bogus")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ServiceSuite) TestGetSessionReturnsSnapshot() {
	token := s.service.CreateSession().Token

	before := s.getSession(token)

	ok, err := s.service.LoginAdmin(s.ctx, token, DefaultAdminPassword)
	s.Require().NoError(err)
	s.Require().True(ok)

	// The earlier snapshot is untouched; only a re-fetch sees the transition
	s.False(before.IsAdmin)
	s.True(s.getSession(token).IsAdmin)
}

func (s *ServiceSuite) TestSnapshotMutationDoesNotLeakIn() {
	token := s.service.CreateSession().Token

	snapshot := s.getSession(token)
	snapshot.IsAdmin = true

	s.False(s.getSession(token).IsAdmin)
}

func (s *ServiceSuite) TestSessionTokensAreUnique() {
	a := s.service.CreateSession()
	b := s.service.CreateSession()
	s.NotEqual(a.Token, b.Token)
}

func (s *ServiceSuite) TestConcurrentTransitionsAndReads() {
	s.registerMember("12345678901")
	token := s.service.CreateSession().Token

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_, _ = s.service.LoginAdmin(s.ctx, token, DefaultAdminPassword)
			_, _ = s.service.LoginMember(s.ctx, token, "12345678901")
			s.service.LogoutMember(token)
		}
	}()

	// Every snapshot observed mid-flight satisfies mutual exclusion
	for i := 0; i < 200; i++ {
		session := s.getSession(token)
		s.False(session.IsAdmin && session.MemberID != "")
	}
	<-done
}

// Admin login

func (s *ServiceSuite) TestAdminLoginDefaultPassword() {
	token := s.service.CreateSession().Token

	ok, err := s.service.LoginAdmin(s.ctx, token, DefaultAdminPassword)
	s.Require().NoError(err)
	s.True(ok)

	session := s.getSession(token)
	s.True(session.IsAdmin)
	s.Empty(session.MemberID)
}

func (s *ServiceSuite) TestAdminLoginWrongPassword() {
	token := s.service.CreateSession().Token

	ok, err := s.service.LoginAdmin(s.ctx, token, "wrong")
	s.Require().NoError(err)
	s.False(ok)
	s.False(s.getSession(token).IsAdmin)
}

func (s *ServiceSuite) TestAdminLoginUnknownToken() {
	_, err := s.service.LoginAdmin(s.ctx, "sess_bogus", DefaultAdminPassword)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ServiceSuite) TestAdminLoginClearsMemberLogin() {
	s.registerMember("12345678901")
	token := s.service.CreateSession().Token

	ok, err := s.service.LoginMember(s.ctx, token, "12345678901")
	s.Require().NoError(err)
	s.Require().True(ok)

	ok, err = s.service.LoginAdmin(s.ctx, token, DefaultAdminPassword)
	s.Require().NoError(err)
	s.Require().True(ok)

	session := s.getSession(token)
	s.True(session.IsAdmin)
	s.Empty(session.MemberID)
}

func (s *ServiceSuite) TestFailedAdminLoginKeepsMemberLogin() {
	s.registerMember("12345678901")
	token := s.service.CreateSession().Token

	ok, err := s.service.LoginMember(s.ctx, token, "12345678901")
	s.Require().NoError(err)
	s.Require().True(ok)

	ok, err = s.service.LoginAdmin(s.ctx, token, "wrong")
	s.Require().NoError(err)
	s.False(ok)

	session := s.getSession(token)
	s.False(session.IsAdmin)
	s.Equal(model.TCID("12345678901"), session.MemberID)
}

func (s *ServiceSuite) TestLogoutAdmin() {
	token := s.service.CreateSession().Token
	ok, err := s.service.LoginAdmin(s.ctx, token, DefaultAdminPassword)
	s.Require().NoError(err)
	s.Require().True(ok)

	s.service.LogoutAdmin(token)

	session := s.getSession(token)
	s.False(session.IsAdmin)
	s.True(session.IsAnonymous())
}

// Member login

func (s *ServiceSuite) TestMemberLogin() {
	s.registerMember("12345678901")
	token := s.service.CreateSession().Token

	ok, err := s.service.LoginMember(s.ctx, token, "12345678901")
	s.Require().NoError(err)
	s.True(ok)

	session := s.getSession(token)
	s.Equal(model.TCID("12345678901"), session.MemberID)
	s.False(session.IsAdmin)
}

func (s *ServiceSuite) TestMemberLoginUnknownMember() {
	token := s.service.CreateSession().Token

	ok, err := s.service.LoginMember(s.ctx, token, "12345678901")
	s.Require().NoError(err)
	s.False(ok)
	s.True(s.getSession(token).IsAnonymous())
}

func (s *ServiceSuite) TestMemberLoginMalformedID() {
	token := s.service.CreateSession().Token

	ok, err := s.service.LoginMember(s.ctx, token, "123")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ServiceSuite) TestMemberLoginClearsAdminLogin() {
	s.registerMember("12345678901")
	token := s.service.CreateSession().Token

	ok, err := s.service.LoginAdmin(s.ctx, token, DefaultAdminPassword)
	s.Require().NoError(err)
	s.Require().True(ok)

	ok, err = s.service.LoginMember(s.ctx, token, "12345678901")
	s.Require().NoError(err)
	s.Require().True(ok)

	session := s.getSession(token)
	s.False(session.IsAdmin)
	s.Equal(model.TCID("12345678901"), session.MemberID)
}

func (s *ServiceSuite) TestMemberLoginStoreFaultLeavesSessionUnchanged() {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	service := New(&faultyStore{}, kvmemory.New(), clk, testutil.NopLogger())
	token := service.CreateSession().Token

	ok, err := service.LoginMember(s.ctx, token, "12345678901")
	s.ErrorIs(err, errStoreDown)
	s.False(ok)

	session, err := service.GetSession(token)
	s.Require().NoError(err)
	s.True(session.IsAnonymous())
}

func (s *ServiceSuite) TestLogoutMember() {
	s.registerMember("12345678901")
	token := s.service.CreateSession().Token

	ok, err := s.service.LoginMember(s.ctx, token, "12345678901")
	s.Require().NoError(err)
	s.Require().True(ok)

	s.service.LogoutMember(token)

	session := s.getSession(token)
	s.Empty(session.MemberID)
	s.True(session.IsAnonymous())
}

// Admin credential

func (s *ServiceSuite) TestEnsureDefaultPasswordSeeds() {
	err := s.service.EnsureDefaultPassword(s.ctx)
	s.Require().NoError(err)

	stored, err := s.credentials.Get(s.ctx, adminPasswordKey)
	s.Require().NoError(err)
	s.Equal(DefaultAdminPassword, stored)
}

func (s *ServiceSuite) TestEnsureDefaultPasswordKeepsExisting() {
	err := s.credentials.Set(s.ctx, adminPasswordKey, "custom")
	s.Require().NoError(err)

	err = s.service.EnsureDefaultPassword(s.ctx)
	s.Require().NoError(err)

	stored, err := s.credentials.Get(s.ctx, adminPasswordKey)
	s.Require().NoError(err)
	s.Equal("custom", stored)
}

func (s *ServiceSuite) TestChangeAdminPassword() {
	err := s.service.ChangeAdminPassword(s.ctx, "newsecret")
	s.Require().NoError(err)

	token := s.service.CreateSession().Token
	ok, err := s.service.LoginAdmin(s.ctx, token, DefaultAdminPassword)
	s.Require().NoError(err)
	s.False(ok)

	ok, err = s.service.LoginAdmin(s.ctx, token, "newsecret")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *ServiceSuite) TestChangeAdminPasswordEmpty() {
	err := s.service.ChangeAdminPassword(s.ctx, "")
	s.ErrorIs(err, model.ErrPasswordRequired)
}

func (s *ServiceSuite) TestChangeAdminPasswordKeepsCurrentSessions() {
	token := s.service.CreateSession().Token
	ok, err := s.service.LoginAdmin(s.ctx, token, DefaultAdminPassword)
	s.Require().NoError(err)
	s.Require().True(ok)

	err = s.service.ChangeAdminPassword(s.ctx, "newsecret")
	s.Require().NoError(err)

	s.True(s.getSession(token).IsAdmin)
}
