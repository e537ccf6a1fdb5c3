// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pinecut/quote-service/internal/domain/model"
	"github.com/pinecut/quote-service/internal/repository"
)

// MockBandsService is a mock implementation of service.BandsService.
type MockBandsService struct {
	mock.Mock
}

// NewMockBandsService creates a new MockBandsService bound to the test's
// lifecycle. Expectations are asserted during cleanup.
func NewMockBandsService(t *testing.T) *MockBandsService {
	m := &MockBandsService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockBandsService) GetActive(ctx context.Context) (*repository.BandConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BandConfig), args.Error(1)
}

func (m *MockBandsService) Create(ctx context.Context, bands []model.PricingBand, createdBy string) (*repository.BandConfig, error) {
	args := m.Called(ctx, bands, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BandConfig), args.Error(1)
}

func (m *MockBandsService) Update(ctx context.Context, id primitive.ObjectID, bands []model.PricingBand, updatedBy string) (*repository.BandConfig, error) {
	args := m.Called(ctx, id, bands, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BandConfig), args.Error(1)
}

func (m *MockBandsService) List(ctx context.Context, limit int) ([]repository.BandConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BandConfig), args.Error(1)
}
