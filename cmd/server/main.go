package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dernekapp/memberregistry-go/internal/api"
	"github.com/dernekapp/memberregistry-go/internal/factory"
	kvredis "github.com/dernekapp/memberregistry-go/internal/kvstore/redis"
	"github.com/dernekapp/memberregistry-go/internal/storage/postgres"
)

func main() {
	// Load .env if present; real environment variables take precedence
	_ = godotenv.Load()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:          logger,
		StorageType:     os.Getenv("STORAGE_TYPE"),
		CredentialStore: os.Getenv("CREDENTIAL_STORE"),
	}

	// Configure Postgres if storage type is postgres
	if cfg.StorageType == factory.StorageTypePostgres {
		pgCfg := postgres.DefaultConfig()
		if host := os.Getenv("DB_HOST"); host != "" {
			pgCfg.Host = host
		}
		if port := os.Getenv("DB_PORT"); port != "" {
			pgCfg.Port = port
		}
		if user := os.Getenv("DB_USER"); user != "" {
			pgCfg.Username = user
		}
		if password := os.Getenv("DB_PASSWORD"); password != "" {
			pgCfg.Password = password
		}
		if name := os.Getenv("DB_NAME"); name != "" {
			pgCfg.Database = name
		}
		if sslMode := os.Getenv("DB_SSLMODE"); sslMode != "" {
			pgCfg.SSLMode = sslMode
		}
		cfg.PostgresConfig = &pgCfg
	}

	// Configure Redis if the credential store is redis
	if cfg.CredentialStore == factory.CredentialStoreRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when CREDENTIAL_STORE=redis")
			os.Exit(1)
		}
		redisCfg := kvredis.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		Guard:         app.Guard,
		MemberService: app.MemberService,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			logger.Error("invalid PORT", slog.String("value", port))
			os.Exit(1)
		}
		serverConfig.Port = p
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
