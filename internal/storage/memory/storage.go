package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dernekapp/memberregistry-go/internal/dependencies/clock"
	"github.com/dernekapp/memberregistry-go/internal/model"
	"github.com/dernekapp/memberregistry-go/internal/storage"
)

// Storage is an in-memory implementation of the member store
type Storage struct {
	clock clock.Clock

	mu      sync.RWMutex
	members map[model.TCID]*model.Member
}

// New creates a new in-memory storage instance
func New(clk clock.Clock) *Storage {
	return &Storage{
		clock:   clk,
		members: make(map[model.TCID]*model.Member),
	}
}

// Ensure Storage implements the interface
var _ storage.MemberStore = (*Storage)(nil)

func (s *Storage) ListMembers(ctx context.Context) ([]*model.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members := make([]*model.Member, 0, len(s.members))
	for _, m := range s.members {
		members = append(members, copyMember(m))
	}
	sort.Slice(members, func(i, j int) bool {
		if !members[i].CreatedAt.Equal(members[j].CreatedAt) {
			return members[i].CreatedAt.Before(members[j].CreatedAt)
		}
		return members[i].TCID < members[j].TCID
	})
	return members, nil
}

func (s *Storage) GetMember(ctx context.Context, id model.TCID) (*model.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.members[id]
	if !ok {
		return nil, model.ErrMemberNotFound
	}
	return copyMember(m), nil
}

func (s *Storage) InsertMember(ctx context.Context, member *model.Member) (*model.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.members[member.TCID]; exists {
		return nil, model.ErrMemberExists
	}

	stored := copyMember(member)
	stored.CreatedAt = s.clock.Now()
	s.members[member.TCID] = stored
	return copyMember(stored), nil
}

func (s *Storage) UpdateMember(ctx context.Context, id model.TCID, update model.MemberUpdate) (*model.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.members[id]
	if !ok {
		return nil, model.ErrMemberNotFound
	}

	m.Name = update.Name
	m.Surname = update.Surname
	m.PhoneNumber = update.PhoneNumber
	return copyMember(m), nil
}

func (s *Storage) DeleteMember(ctx context.Context, id model.TCID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.members, id)
	return nil
}

// copyMember returns a copy so callers cannot mutate stored state
func copyMember(m *model.Member) *model.Member {
	c := *m
	return &c
}
