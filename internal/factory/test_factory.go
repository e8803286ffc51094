package factory

import (
	"time"

	"github.com/dernekapp/memberregistry-go/internal/dependencies/mocks"
	kvmemory "github.com/dernekapp/memberregistry-go/internal/kvstore/memory"
	"github.com/dernekapp/memberregistry-go/internal/storage/memory"
	"github.com/dernekapp/memberregistry-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	store := memory.New(mockClock)
	credentials := kvmemory.New()

	app := newWithDependencies(store, credentials, mockClock, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
