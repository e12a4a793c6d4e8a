// Package setup bootstraps the moderation service dependencies in order:
// configuration, logging, storage, and the moderation pipeline itself.
package setup

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/medusavr/moderation/internal/database"
	"github.com/medusavr/moderation/internal/events"
	"github.com/medusavr/moderation/internal/moderation/filter"
	"github.com/medusavr/moderation/internal/moderation/response"
	"github.com/medusavr/moderation/internal/moderation/tracker"
	"github.com/medusavr/moderation/internal/redis"
	"github.com/medusavr/moderation/internal/setup/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// App bundles all core dependencies and services needed by the moderation
// service. Each field represents a subsystem that needs initialization and
// cleanup.
type App struct {
	Config         *config.Config
	Logger         *zap.Logger
	DB             database.Client
	RedisManager   *redis.Manager
	ContentFilter  *filter.ContentFilter
	ResponseFilter *response.Filter
	Tracker        *tracker.Tracker
}

// InitializeApp bootstraps all application dependencies in the correct order,
// ensuring each component has its required dependencies available.
func InitializeApp(ctx context.Context) (*App, error) {
	cfg, configDir, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(&cfg.Debug)
	if err != nil {
		return nil, err
	}

	db, err := database.NewConnection(ctx, &cfg.PostgreSQL, logger)
	if err != nil {
		return nil, err
	}

	redisManager := redis.NewManager(&cfg.Redis, logger)

	wordlist := loadWordlist(configDir, logger)

	patterns := loadPatternSet(configDir, logger)

	responseFilter, err := response.NewFilter(patterns, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build response filter: %w", err)
	}

	var publisher *events.Publisher

	if cfg.Moderation.PublishDeletionEvents {
		eventsClient, err := redisManager.GetClient(redis.EventsDBIndex)
		if err != nil {
			return nil, err
		}

		publisher = events.NewPublisher(eventsClient, logger)
	}

	violationTracker := tracker.New(
		tracker.NewDatabaseStore(db), publisher, &cfg.Moderation, logger,
	)

	return &App{
		Config:         cfg,
		Logger:         logger,
		DB:             db,
		RedisManager:   redisManager,
		ContentFilter:  filter.NewContentFilter(wordlist, logger),
		ResponseFilter: responseFilter,
		Tracker:        violationTracker,
	}, nil
}

// Cleanup ensures graceful shutdown of all components in reverse
// initialization order. Logs but does not fail on cleanup errors so every
// component gets a cleanup attempt.
func (s *App) Cleanup() {
	if err := s.Logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}

	if err := s.DB.Close(); err != nil {
		log.Printf("Failed to close database connection: %v", err)
	}

	s.RedisManager.Close()
}

// newLogger builds the application logger from the configured level.
func newLogger(cfg *config.Debug) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// loadWordlist loads the configured wordlist, falling back to the compiled-in
// defaults when no file is present.
func loadWordlist(configDir string, logger *zap.Logger) *config.Wordlist {
	wordlist, err := config.LoadWordlist(configDir)
	if err != nil {
		if !errors.Is(err, config.ErrWordlistNotFound) {
			logger.Warn("Failed to load wordlist file, using defaults", zap.Error(err))
		} else {
			logger.Info("No wordlist file found, using defaults")
		}

		return config.DefaultWordlist()
	}

	return wordlist
}

// loadPatternSet loads the configured response patterns, falling back to the
// compiled-in defaults when no file is present.
func loadPatternSet(configDir string, logger *zap.Logger) *config.PatternSet {
	patterns, err := config.LoadPatternSet(configDir)
	if err != nil {
		if !errors.Is(err, config.ErrPatternSetNotFound) {
			logger.Warn("Failed to load pattern file, using defaults", zap.Error(err))
		} else {
			logger.Info("No pattern file found, using defaults")
		}

		return config.DefaultPatternSet()
	}

	return patterns
}
