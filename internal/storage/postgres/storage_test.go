package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dernekapp/memberregistry-go/internal/model"
)

// The suite runs against an in-memory SQLite database. GORM's error
// translation gives the same duplicate-key and not-found outcomes as
// Postgres, so the mapping logic is exercised without a live server.
type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	s.Require().NoError(err)

	s.storage, err = NewWithDB(db)
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	_ = s.storage.Close()
}

func (s *StorageSuite) TestInsertAndGetMember() {
	member := &model.Member{
		TCID:        "12345678901",
		Name:        "Ayse",
		Surname:     "Yilmaz",
		PhoneNumber: "5551234567",
	}

	stored, err := s.storage.InsertMember(s.ctx, member)
	s.Require().NoError(err)
	s.Equal(member.TCID, stored.TCID)
	s.False(stored.CreatedAt.IsZero())

	retrieved, err := s.storage.GetMember(s.ctx, "12345678901")
	s.Require().NoError(err)
	s.Equal("Ayse", retrieved.Name)
	s.Equal("Yilmaz", retrieved.Surname)
	s.Equal("5551234567", retrieved.PhoneNumber)
}

func (s *StorageSuite) TestInsertDuplicateMember() {
	member := &model.Member{TCID: "12345678901", Name: "Ayse", Surname: "Yilmaz", PhoneNumber: "5551234567"}

	_, err := s.storage.InsertMember(s.ctx, member)
	s.Require().NoError(err)

	_, err = s.storage.InsertMember(s.ctx, member)
	s.ErrorIs(err, model.ErrMemberExists)
}

func (s *StorageSuite) TestGetMemberNotFound() {
	_, err := s.storage.GetMember(s.ctx, "99999999999")
	s.ErrorIs(err, model.ErrMemberNotFound)
}

func (s *StorageSuite) TestListMembers() {
	a := &model.Member{TCID: "11111111111", Name: "Ayse", Surname: "Yilmaz", PhoneNumber: "5551234567"}
	b := &model.Member{TCID: "22222222222", Name: "Mehmet", Surname: "Demir", PhoneNumber: "5557654321"}

	_, err := s.storage.InsertMember(s.ctx, a)
	s.Require().NoError(err)
	_, err = s.storage.InsertMember(s.ctx, b)
	s.Require().NoError(err)

	members, err := s.storage.ListMembers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(members, 2)
	s.Equal(model.TCID("11111111111"), members[0].TCID)
	s.Equal(model.TCID("22222222222"), members[1].TCID)
}

func (s *StorageSuite) TestUpdateMember() {
	member := &model.Member{TCID: "12345678901", Name: "Ayse", Surname: "Yilmaz", PhoneNumber: "5551234567"}
	stored, err := s.storage.InsertMember(s.ctx, member)
	s.Require().NoError(err)

	updated, err := s.storage.UpdateMember(s.ctx, "12345678901", model.MemberUpdate{
		Name:        "Ayse",
		Surname:     "Kaya",
		PhoneNumber: "5559876543",
	})
	s.Require().NoError(err)
	s.Equal("Kaya", updated.Surname)
	s.Equal("5559876543", updated.PhoneNumber)
	s.Equal(stored.TCID, updated.TCID)
}

func (s *StorageSuite) TestUpdateMemberNotFound() {
	_, err := s.storage.UpdateMember(s.ctx, "99999999999", model.MemberUpdate{
		Name:        "Ayse",
		Surname:     "Yilmaz",
		PhoneNumber: "5551234567",
	})
	s.ErrorIs(err, model.ErrMemberNotFound)
}

func (s *StorageSuite) TestDeleteMember() {
	member := &model.Member{TCID: "12345678901", Name: "Ayse", Surname: "Yilmaz", PhoneNumber: "5551234567"}
	_, err := s.storage.InsertMember(s.ctx, member)
	s.Require().NoError(err)

	err = s.storage.DeleteMember(s.ctx, "12345678901")
	s.Require().NoError(err)

	_, err = s.storage.GetMember(s.ctx, "12345678901")
	s.ErrorIs(err, model.ErrMemberNotFound)
}

func (s *StorageSuite) TestDeleteMemberIdempotent() {
	err := s.storage.DeleteMember(s.ctx, "99999999999")
	s.NoError(err)
}
