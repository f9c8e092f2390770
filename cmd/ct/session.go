package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"challenge-tracker/internal/api"
	"challenge-tracker/internal/config"
	"challenge-tracker/internal/logging"
	"challenge-tracker/internal/persistence"
	"challenge-tracker/internal/repository/sqlite"
	"challenge-tracker/internal/services"
)

// session owns the resources opened for one invocation
type session struct {
	repo   sqlite.Repository
	logger *zap.Logger
}

// openSession wires logger, repository and persistence into a tracker API
func openSession(ctx context.Context, cfg *config.Config) (api.TrackerAPI, io.Closer, error) {
	if cfg.Application.Verbose {
		cfg.Logging.Level = "debug"
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	env := config.GetEnvironment()
	repo, err := config.NewRepositoryFactory(env, cfg).CreateRepository()
	if err != nil {
		_ = logger.Sync()
		return nil, nil, fmt.Errorf("failed to open tracker storage: %w", err)
	}
	logger.Debug("opened tracker storage",
		zap.String("environment", string(env)),
		zap.String("path", cfg.GetDatabasePath()),
		zap.String("key", cfg.Storage.Key))

	adapter := persistence.NewAdapter(repo, cfg.Storage.Key, logger)
	trackerAPI := api.NewTrackerAPI(ctx, adapter, cfg, services.NewServiceContainer(nil), logger)

	return trackerAPI, &session{repo: repo, logger: logger}, nil
}

// Close releases the database and flushes buffered log entries
func (s *session) Close() error {
	err := s.repo.Close()
	// stderr on a terminal does not support Sync
	_ = s.logger.Sync()
	return err
}
