package memory

import (
	"context"
	"sync"

	"github.com/dernekapp/memberregistry-go/internal/kvstore"
)

// Store is an in-memory implementation of the key/value port
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates a new in-memory store
func New() *Store {
	return &Store{
		values: make(map[string]string),
	}
}

// Ensure Store implements the interface
var _ kvstore.Store = (*Store)(nil)

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.values[key]
	if !ok {
		return "", kvstore.ErrKeyNotFound
	}
	return val, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}
