package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key has no stored value
var ErrKeyNotFound = errors.New("key not found")

// Store is a small durable key/value port. The guard keeps the admin
// credential behind it so the backing store stays swappable for tests.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
