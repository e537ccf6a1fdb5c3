// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pinecut/quote-service/internal/domain/model"
)

// BandsRepositoryInterface defines the interface for pricing band repository operations.
type BandsRepositoryInterface interface {
	GetActive(ctx context.Context) (*BandConfig, error)
	Create(ctx context.Context, bands []model.PricingBand, createdBy string) (*BandConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, bands []model.PricingBand, updatedBy string) (*BandConfig, error)
	List(ctx context.Context, limit int) ([]BandConfig, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
