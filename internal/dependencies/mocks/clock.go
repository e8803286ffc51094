package mocks

import (
	"time"

	"github.com/dernekapp/memberregistry-go/internal/dependencies/clock"
)

// MockClock is a manually driven Clock. Storage tests use it to pin the
// registration timestamp and to order members deterministically.
type MockClock struct {
	CurrentTime time.Time
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock pinned to the given instant
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the pinned time
func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

// Set pins the clock to the given instant
func (c *MockClock) Set(t time.Time) {
	c.CurrentTime = t
}
