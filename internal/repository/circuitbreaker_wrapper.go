// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pinecut/quote-service/internal/circuitbreaker"
	"github.com/pinecut/quote-service/internal/domain/model"
)

// BandsRepositoryWithCircuitBreaker wraps BandsRepository with circuit breaker protection.
type BandsRepositoryWithCircuitBreaker struct {
	repo           *BandsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewBandsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewBandsRepositoryWithCircuitBreaker(repo *BandsRepository, cb *circuitbreaker.CircuitBreaker) *BandsRepositoryWithCircuitBreaker {
	return &BandsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active band configuration with circuit breaker protection.
// When the circuit is open the default ladder applies, so nil is returned.
func (r *BandsRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*BandConfig, error) {
	var result *BandConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Create activates a new band configuration with circuit breaker protection.
func (r *BandsRepositoryWithCircuitBreaker) Create(ctx context.Context, bands []model.PricingBand, createdBy string) (*BandConfig, error) {
	var result *BandConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, bands, createdBy)
		return cbErr
	})
	return result, err
}

// Update updates an existing band configuration with circuit breaker protection.
func (r *BandsRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, bands []model.PricingBand, updatedBy string) (*BandConfig, error) {
	var result *BandConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, bands, updatedBy)
		return cbErr
	})
	return result, err
}

// List returns band configurations with circuit breaker protection.
func (r *BandsRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]BandConfig, error) {
	var result []BandConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *BandsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
