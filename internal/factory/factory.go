package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/dernekapp/memberregistry-go/internal/dependencies/clock"
	"github.com/dernekapp/memberregistry-go/internal/kvstore"
	kvmemory "github.com/dernekapp/memberregistry-go/internal/kvstore/memory"
	kvredis "github.com/dernekapp/memberregistry-go/internal/kvstore/redis"
	"github.com/dernekapp/memberregistry-go/internal/services/guard"
	"github.com/dernekapp/memberregistry-go/internal/services/member"
	"github.com/dernekapp/memberregistry-go/internal/storage"
	"github.com/dernekapp/memberregistry-go/internal/storage/memory"
	"github.com/dernekapp/memberregistry-go/internal/storage/postgres"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypePostgres = "postgres"
)

// Credential store type constants
const (
	CredentialStoreMemory = "memory"
	CredentialStoreRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage     storage.MemberStore
	Credentials kvstore.Store

	// External dependencies
	Clock clock.Clock

	// Services
	MemberService *member.Service
	Guard         *guard.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the member storage backend ("memory" or "postgres")
	// If empty, defaults to "memory"
	StorageType string
	// PostgresConfig holds database connection settings (required if
	// StorageType is "postgres")
	PostgresConfig *postgres.Config
	// CredentialStore selects the admin credential backend ("memory" or "redis")
	// If empty, defaults to "memory"
	CredentialStore string
	// RedisConfig holds Redis connection settings (required if
	// CredentialStore is "redis")
	RedisConfig *kvredis.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	clk := clock.New()

	// Create member storage based on type
	var store storage.MemberStore
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New(clk)
	case StorageTypePostgres:
		if cfg.PostgresConfig == nil {
			return nil, errors.New("PostgresConfig required when StorageType is postgres")
		}
		pgStore, err := postgres.New(*cfg.PostgresConfig)
		if err != nil {
			return nil, err
		}
		store = pgStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'postgres'")
	}

	// Create the admin credential store based on type
	var credentials kvstore.Store
	credentialStore := cfg.CredentialStore
	if credentialStore == "" {
		credentialStore = CredentialStoreMemory
	}

	switch credentialStore {
	case CredentialStoreMemory:
		credentials = kvmemory.New()
	case CredentialStoreRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when CredentialStore is redis")
		}
		redisStore, err := kvredis.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		credentials = redisStore
	default:
		return nil, errors.New("invalid CredentialStore: must be 'memory' or 'redis'")
	}

	app := newWithDependencies(store, credentials, clk, logger)

	// Seed the default admin credential so first login works out of the box
	seedCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Guard.EnsureDefaultPassword(seedCtx); err != nil {
		return nil, err
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.MemberStore, credentials kvstore.Store, clk clock.Clock, logger *slog.Logger) *App {
	memberService := member.New(store, logger)
	guardService := guard.New(store, credentials, clk, logger)

	return &App{
		Storage:       store,
		Credentials:   credentials,
		Clock:         clk,
		MemberService: memberService,
		Guard:         guardService,
	}
}
