package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"backlog/backend/internal/config"
	"backlog/backend/internal/database"
	"backlog/backend/internal/handler"
	"backlog/backend/internal/metrics"
	"backlog/backend/internal/server"
	"backlog/backend/internal/service"
	"backlog/backend/internal/store"
	"backlog/backend/internal/telemetry"

	// Swagger docs, picked up by gin-swagger.
	_ "backlog/backend/docs"
)

// @title           Backlog API
// @version         1.0
// @description     CRUD API for a personal game backlog, guarded by a static API key.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apiKey ApiKeyAuth
// @in header
// @name X-Api-Key
func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("loading configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	// Secret resolution happens once, before anything else; a missing
	// connection string or API key means the process must not come up.
	provider, err := cfg.SecretProvider()
	if err != nil {
		logger.Fatal().Err(err).Msg("building secret provider")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := cfg.ResolveSecrets(ctx, provider); err != nil {
		logger.Fatal().Err(err).Msg("resolving secrets")
	}
	cancel()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("connecting to database")
	}
	logger.Info().Msg("database connection established")

	var tc telemetry.Client
	if cfg.TelemetryEndpoint != "" {
		httpClient := telemetry.NewHTTPClient(telemetry.HTTPClientConfig{
			Endpoint: cfg.TelemetryEndpoint,
			Logger:   logger,
		})
		defer httpClient.Close()
		tc = httpClient
	} else {
		tc = telemetry.NewLogClient(logger)
	}

	games := store.NewGormStore(db)
	h := handler.NewGameHandler(games, service.NewValidator(games), tc, logger)

	router := server.New(cfg.APIKey, h, metrics.New(), logger, tc)

	logger.Info().Str("addr", cfg.ServerAddr).Msg("server is running")
	if err := router.Run(cfg.ServerAddr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
