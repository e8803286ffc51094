package member

import (
	"context"
	"log/slog"

	"github.com/dernekapp/memberregistry-go/internal/model"
	"github.com/dernekapp/memberregistry-go/internal/storage"
)

// Service is the typed repository over the member store. It enforces the
// registration admission rules before any store call and passes store
// outcomes through unchanged: not-found and already-registered stay
// distinguishable from transport faults.
type Service struct {
	storage storage.MemberStore
	logger  *slog.Logger
}

// New creates a new member service
func New(store storage.MemberStore, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger,
	}
}

// List returns every registered member in one round trip.
func (s *Service) List(ctx context.Context) ([]*model.Member, error) {
	return s.storage.ListMembers(ctx)
}

// GetByID looks a member up by identity number. A malformed id is rejected
// without touching the store; an absent member is model.ErrMemberNotFound.
func (s *Service) GetByID(ctx context.Context, id model.TCID) (*model.Member, error) {
	if !model.ValidTCID(id) {
		return nil, model.ErrInvalidTCID
	}
	return s.storage.GetMember(ctx, id)
}

// Register validates and stores a new member. The candidate's identity
// number becomes the primary key; a duplicate yields model.ErrMemberExists.
func (s *Service) Register(ctx context.Context, candidate *model.Member) (*model.Member, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.storage.InsertMember(ctx, candidate)
	if err != nil {
		return nil, err
	}

	s.logger.Info("member registered", slog.String("tc_id", string(stored.TCID)))
	return stored, nil
}

// Update overwrites a member's mutable fields and returns the post-update
// record. The identity number is never part of the update payload.
func (s *Service) Update(ctx context.Context, id model.TCID, update model.MemberUpdate) (*model.Member, error) {
	if !model.ValidTCID(id) {
		return nil, model.ErrInvalidTCID
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}
	return s.storage.UpdateMember(ctx, id, update)
}

// Delete removes a member. Deleting an id that is already gone succeeds.
func (s *Service) Delete(ctx context.Context, id model.TCID) error {
	if !model.ValidTCID(id) {
		return model.ErrInvalidTCID
	}
	if err := s.storage.DeleteMember(ctx, id); err != nil {
		return err
	}

	s.logger.Info("member deleted", slog.String("tc_id", string(id)))
	return nil
}
