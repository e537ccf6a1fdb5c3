package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pinecut/quote-service/internal/domain/model"
	"github.com/pinecut/quote-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// BandsService provides pricing band configuration operations.
type BandsService interface {
	GetActive(ctx context.Context) (*repository.BandConfig, error)
	Create(ctx context.Context, bands []model.PricingBand, createdBy string) (*repository.BandConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, bands []model.PricingBand, updatedBy string) (*repository.BandConfig, error)
	List(ctx context.Context, limit int) ([]repository.BandConfig, error)
}

// BandsServiceImpl implements BandsService.
type BandsServiceImpl struct {
	bandsRepo repository.BandsRepositoryInterface
}

// NewBandsService creates a new pricing bands service.
func NewBandsService(bandsRepo repository.BandsRepositoryInterface) BandsService {
	if bandsRepo == nil {
		return &BandsServiceImpl{}
	}
	return &BandsServiceImpl{
		bandsRepo: bandsRepo,
	}
}

func (s *BandsServiceImpl) GetActive(ctx context.Context) (*repository.BandConfig, error) {
	if s.bandsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.bandsRepo.GetActive(ctx)
}

func (s *BandsServiceImpl) Create(ctx context.Context, bands []model.PricingBand, createdBy string) (*repository.BandConfig, error) {
	if s.bandsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.bandsRepo.Create(ctx, bands, createdBy)
}

func (s *BandsServiceImpl) Update(ctx context.Context, id primitive.ObjectID, bands []model.PricingBand, updatedBy string) (*repository.BandConfig, error) {
	if s.bandsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.bandsRepo.Update(ctx, id, bands, updatedBy)
}

func (s *BandsServiceImpl) List(ctx context.Context, limit int) ([]repository.BandConfig, error) {
	if s.bandsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.bandsRepo.List(ctx, limit)
}
