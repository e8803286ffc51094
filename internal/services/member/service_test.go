package member

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dernekapp/memberregistry-go/internal/dependencies/mocks"
	"github.com/dernekapp/memberregistry-go/internal/model"
	"github.com/dernekapp/memberregistry-go/internal/storage"
	"github.com/dernekapp/memberregistry-go/internal/storage/memory"
	"github.com/dernekapp/memberregistry-go/internal/testutil"
)

// spyStore records how many calls reach the underlying store, so tests can
// prove that invalid input is rejected before any store round trip
type spyStore struct {
	inner storage.MemberStore
	calls int
}

var _ storage.MemberStore = (*spyStore)(nil)

func (s *spyStore) ListMembers(ctx context.Context) ([]*model.Member, error) {
	s.calls++
	return s.inner.ListMembers(ctx)
}

func (s *spyStore) GetMember(ctx context.Context, id model.TCID) (*model.Member, error) {
	s.calls++
	return s.inner.GetMember(ctx, id)
}

func (s *spyStore) InsertMember(ctx context.Context, member *model.Member) (*model.Member, error) {
	s.calls++
	return s.inner.InsertMember(ctx, member)
}

func (s *spyStore) UpdateMember(ctx context.Context, id model.TCID, update model.MemberUpdate) (*model.Member, error) {
	s.calls++
	return s.inner.UpdateMember(ctx, id, update)
}

func (s *spyStore) DeleteMember(ctx context.Context, id model.TCID) error {
	s.calls++
	return s.inner.DeleteMember(ctx, id)
}

type ServiceSuite struct {
	suite.Suite
	store   *spyStore
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.store = &spyStore{inner: memory.New(clk)}
	s.service = New(s.store, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) validMember() *model.Member {
	return &model.Member{
		TCID:        "12345678901",
		Name:        "Ayse",
		Surname:     "Yilmaz",
		PhoneNumber: "5551234567",
	}
}

// Register

func (s *ServiceSuite) TestRegister() {
	stored, err := s.service.Register(s.ctx, s.validMember())
	s.Require().NoError(err)
	s.Equal(model.TCID("12345678901"), stored.TCID)
	s.False(stored.CreatedAt.IsZero())
}

func (s *ServiceSuite) TestRegisterDuplicate() {
	_, err := s.service.Register(s.ctx, s.validMember())
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, s.validMember())
	s.ErrorIs(err, model.ErrMemberExists)
}

func (s *ServiceSuite) TestRegisterInvalidTCID() {
	m := s.validMember()
	m.TCID = "123"

	_, err := s.service.Register(s.ctx, m)
	s.ErrorIs(err, model.ErrInvalidTCID)
	s.Zero(s.store.calls)
}

func (s *ServiceSuite) TestRegisterNonNumericTCID() {
	m := s.validMember()
	m.TCID = "1234567890a"

	_, err := s.service.Register(s.ctx, m)
	s.ErrorIs(err, model.ErrInvalidTCID)
	s.Zero(s.store.calls)
}

func (s *ServiceSuite) TestRegisterMissingName() {
	m := s.validMember()
	m.Name = "   "

	_, err := s.service.Register(s.ctx, m)
	s.ErrorIs(err, model.ErrNameRequired)
	s.Zero(s.store.calls)
}

func (s *ServiceSuite) TestRegisterMissingSurname() {
	m := s.validMember()
	m.Surname = ""

	_, err := s.service.Register(s.ctx, m)
	s.ErrorIs(err, model.ErrSurnameRequired)
	s.Zero(s.store.calls)
}

func (s *ServiceSuite) TestRegisterInvalidPhone() {
	m := s.validMember()
	m.PhoneNumber = "555-123"

	_, err := s.service.Register(s.ctx, m)
	s.ErrorIs(err, model.ErrInvalidPhoneNumber)
	s.Zero(s.store.calls)
}

// GetByID

func (s *ServiceSuite) TestGetByID() {
	_, err := s.service.Register(s.ctx, s.validMember())
	s.Require().NoError(err)

	m, err := s.service.GetByID(s.ctx, "12345678901")
	s.Require().NoError(err)
	s.Equal("Ayse", m.Name)
}

func (s *ServiceSuite) TestGetByIDNotFound() {
	_, err := s.service.GetByID(s.ctx, "99999999999")
	s.ErrorIs(err, model.ErrMemberNotFound)
}

func (s *ServiceSuite) TestGetByIDInvalid() {
	_, err := s.service.GetByID(s.ctx, "not-an-id")
	s.ErrorIs(err, model.ErrInvalidTCID)
	s.Zero(s.store.calls)
}

// List

func (s *ServiceSuite) TestList() {
	_, err := s.service.Register(s.ctx, s.validMember())
	s.Require().NoError(err)

	members, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(members, 1)
}

// Update

func (s *ServiceSuite) TestUpdate() {
	_, err := s.service.Register(s.ctx, s.validMember())
	s.Require().NoError(err)

	updated, err := s.service.Update(s.ctx, "12345678901", model.MemberUpdate{
		Name:        "Ayse",
		Surname:     "Kaya",
		PhoneNumber: "5559876543",
	})
	s.Require().NoError(err)
	s.Equal("Kaya", updated.Surname)
}

func (s *ServiceSuite) TestUpdateNotFound() {
	_, err := s.service.Update(s.ctx, "99999999999", model.MemberUpdate{
		Name:        "Ayse",
		Surname:     "Yilmaz",
		PhoneNumber: "5551234567",
	})
	s.ErrorIs(err, model.ErrMemberNotFound)
}

func (s *ServiceSuite) TestUpdateInvalidFields() {
	_, err := s.service.Register(s.ctx, s.validMember())
	s.Require().NoError(err)
	s.store.calls = 0

	_, err = s.service.Update(s.ctx, "12345678901", model.MemberUpdate{
		Name:        "",
		Surname:     "Kaya",
		PhoneNumber: "5559876543",
	})
	s.ErrorIs(err, model.ErrNameRequired)
	s.Zero(s.store.calls)
}

// Delete

func (s *ServiceSuite) TestDelete() {
	_, err := s.service.Register(s.ctx, s.validMember())
	s.Require().NoError(err)

	err = s.service.Delete(s.ctx, "12345678901")
	s.Require().NoError(err)

	_, err = s.service.GetByID(s.ctx, "12345678901")
	s.ErrorIs(err, model.ErrMemberNotFound)
}

func (s *ServiceSuite) TestDeleteAbsentSucceeds() {
	err := s.service.Delete(s.ctx, "99999999999")
	s.NoError(err)
}

func (s *ServiceSuite) TestDeleteInvalidID() {
	err := s.service.Delete(s.ctx, "123")
	s.ErrorIs(err, model.ErrInvalidTCID)
	s.Zero(s.store.calls)
}
