// Package repository provides data access for pricing band configuration.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pinecut/quote-service/internal/domain/model"
)

// BandConfig represents a versioned pricing band ladder document. Only one
// document is active at a time; updates deactivate the previous version.
type BandConfig struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Bands     []model.PricingBand    `bson:"bands" json:"bands"`
	Active    bool                   `bson:"active" json:"active"`
	Version   int                    `bson:"version" json:"version"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time              `bson:"updated_at" json:"updated_at"`
	CreatedBy string                 `bson:"created_by,omitempty" json:"created_by,omitempty"`
	Metadata  map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// Ladder returns the bands as a selectable ladder.
func (c *BandConfig) Ladder() model.BandLadder {
	return model.BandLadder(c.Bands)
}

// BandsRepository provides methods for pricing band configuration.
type BandsRepository struct {
	collection *mongo.Collection
}

// NewBandsRepository creates a new pricing bands repository.
func NewBandsRepository(db *MongoDB) *BandsRepository {
	return &BandsRepository{
		collection: db.PricingBands,
	}
}

// GetActive returns the active band configuration, or nil when none exists.
func (r *BandsRepository) GetActive(ctx context.Context) (*BandConfig, error) {
	var config BandConfig
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Create activates a new band configuration, deactivating any previous one.
func (r *BandsRepository) Create(ctx context.Context, bands []model.PricingBand, createdBy string) (*BandConfig, error) {
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	config := BandConfig{
		ID:        primitive.NewObjectID(),
		Bands:     bands,
		Active:    true,
		Version:   1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: createdBy,
		Metadata:  make(map[string]interface{}),
	}

	_, err = r.collection.InsertOne(ctx, config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// Update replaces the bands of an existing configuration and bumps its version.
func (r *BandsRepository) Update(ctx context.Context, id primitive.ObjectID, bands []model.PricingBand, updatedBy string) (*BandConfig, error) {
	var current BandConfig
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&current)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"bands":      bands,
			"updated_at": time.Now(),
			"version":    current.Version + 1,
		},
	}
	if updatedBy != "" {
		if setDoc, ok := update["$set"].(bson.M); ok {
			setDoc["updated_by"] = updatedBy
		}
	}

	var config BandConfig
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// List returns band configurations newest first.
func (r *BandsRepository) List(ctx context.Context, limit int) ([]BandConfig, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var configs []BandConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}
