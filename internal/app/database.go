// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pinecut/quote-service/config"
	"github.com/pinecut/quote-service/internal/circuitbreaker"
	"github.com/pinecut/quote-service/internal/domain/model"
	"github.com/pinecut/quote-service/internal/repository"
	"github.com/pinecut/quote-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	Mongo               *repository.MongoDB
	BandsRepo           repository.BandsRepositoryInterface
	LoggingService      service.LoggingService
	BandsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker  *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	bandsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-pricing-bands",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	bandsRepo := repository.NewBandsRepository(db)
	bandsRepoWithCB := repository.NewBandsRepositoryWithCircuitBreaker(bandsRepo, bandsCB)

	// Seed the default price ladder if no configuration exists
	if err := initializeDefaultBands(bandsRepoWithCB); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize default pricing bands")
	}

	return &DatabaseComponents{
		Mongo:               db,
		BandsRepo:           bandsRepoWithCB,
		LoggingService:      loggingService,
		BandsCircuitBreaker: bandsCB,
		LogsCircuitBreaker:  logsCB,
	}
}

// initializeDefaultBands creates the default pricing-band configuration if none exists.
func initializeDefaultBands(repo repository.BandsRepositoryInterface) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	active, err := repo.GetActive(ctx)
	if err != nil {
		return err
	}

	if active == nil {
		// No active config, create default
		_, err := repo.Create(ctx, model.DefaultLadder, "system")
		if err != nil {
			return err
		}
		log.Info().Int("bands", len(model.DefaultLadder)).Msg("Created default pricing bands")
	}

	return nil
}
