package http

import (
	"github.com/gin-gonic/gin"

	"github.com/pinecut/quote-service/internal/service"
)

// QuoteRoutes handles quote-related route registration.
type QuoteRoutes struct {
	handler      *Handler
	bandsHandler *BandsHandler
}

// NewQuoteRoutes creates a new QuoteRoutes instance.
func NewQuoteRoutes(quoter service.Quoter, bandsService service.BandsService) *QuoteRoutes {
	handler := NewHandler(quoter, bandsService)

	var bandsHandler *BandsHandler
	if bandsService != nil {
		bandsHandler = NewBandsHandler(bandsService, handler)
	}

	return &QuoteRoutes{
		handler:      handler,
		bandsHandler: bandsHandler,
	}
}

// RegisterPublicRoutes registers quote routes on the API group.
func (r *QuoteRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/instant-quote", r.handler.InstantQuote)

	if r.bandsHandler != nil {
		rg.GET("/pricing-bands", r.bandsHandler.GetActiveBands)
		rg.PUT("/pricing-bands", r.bandsHandler.UpdateBands)
		rg.GET("/pricing-bands/history", r.bandsHandler.ListBands)
	}
}

// GetHandler returns the underlying quote handler.
func (r *QuoteRoutes) GetHandler() *Handler {
	return r.handler
}
