// Package app provides router configuration.
package app

import (
	"github.com/pinecut/quote-service/config"
	"github.com/pinecut/quote-service/internal/http"
	"github.com/pinecut/quote-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	quoter service.Quoter,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	var bandsService service.BandsService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		if dbComponents.BandsRepo != nil {
			bandsService = service.NewBandsService(dbComponents.BandsRepo)
		}
	}

	handler := http.NewHandler(quoter, bandsService)
	healthHandler := http.NewHealthHandler()

	// Register database probes for readiness checks
	if dbComponents != nil {
		if dbComponents.Mongo != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(dbComponents.Mongo.HealthCheck))
		}
		if dbComponents.BandsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_pricing_bands", dbComponents.BandsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		HMACSecret:        cfg.Server.HMACSecret,
		HMACMaxSkew:       cfg.Server.HMACMaxSkew,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		BandsService:      bandsService,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
