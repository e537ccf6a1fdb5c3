//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pinecut/quote-service/config"
	"github.com/pinecut/quote-service/internal/mocks"
	"github.com/pinecut/quote-service/internal/service"
)

func TestInitializeRouter(t *testing.T) {
	tests := []struct {
		name         string
		quoter       service.Quoter
		dbComponents *DatabaseComponents
		cfg          config.Config
		validate     func(*testing.T, *RouterComponents)
	}{
		{
			name:   "creates router with quoter only",
			quoter: service.NewQuoteService(),
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  100,
					RateWindow: time.Minute,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Handler)
				assert.NotNil(t, components.HealthHandler)
				assert.True(t, components.Config.EnableIdempotency)
				assert.Equal(t, 100, components.Config.RateLimit)
			},
		},
		{
			name:   "creates router with request signing config",
			quoter: service.NewQuoteService(),
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:   50,
					RateWindow:  30 * time.Second,
					HMACSecret:  "test-secret",
					HMACMaxSkew: time.Minute,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.Equal(t, "test-secret", components.Config.HMACSecret)
				assert.Equal(t, time.Minute, components.Config.HMACMaxSkew)
			},
		},
		{
			name:   "creates router with database components",
			quoter: service.NewQuoteService(),
			dbComponents: &DatabaseComponents{
				BandsRepo:      new(mocks.MockBandsRepositoryInterface),
				LoggingService: mocks.NewMockLoggingService(t),
			},
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Config.BandsService)
				assert.NotNil(t, components.Config.LoggingService)
			},
		},
		{
			name:   "creates router with circuit breakers registered",
			quoter: service.NewQuoteService(),
			dbComponents: &DatabaseComponents{
				BandsRepo:      new(mocks.MockBandsRepositoryInterface),
				LoggingService: mocks.NewMockLoggingService(t),
				// nil breakers: registration is skipped, health handler still works
			},
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.HealthHandler)
			},
		},
		{
			name:         "creates router with nil dbComponents",
			quoter:       service.NewQuoteService(),
			dbComponents: nil,
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.Nil(t, components.Config.BandsService)
				assert.Nil(t, components.Config.LoggingService)
			},
		},
		{
			name:   "creates router without bands service when repo is nil",
			quoter: service.NewQuoteService(),
			dbComponents: &DatabaseComponents{
				LoggingService: mocks.NewMockLoggingService(t),
			},
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.Nil(t, components.Config.BandsService)
				assert.NotNil(t, components.Config.LoggingService)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeRouter(tt.quoter, tt.dbComponents, tt.cfg)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}
