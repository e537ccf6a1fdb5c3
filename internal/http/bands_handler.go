package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pinecut/quote-service/internal/domain/dto"
	"github.com/pinecut/quote-service/internal/service"
)

// BandsHandler provides HTTP handlers for pricing band routes.
type BandsHandler struct {
	bandsService service.BandsService
	quoteHandler *Handler
}

// NewBandsHandler creates a new BandsHandler instance.
func NewBandsHandler(bandsService service.BandsService, quoteHandler *Handler) *BandsHandler {
	return &BandsHandler{
		bandsService: bandsService,
		quoteHandler: quoteHandler,
	}
}

// GetActiveBands handles GET /api/pricing-bands requests.
//
// @Summary      Get active pricing bands
// @Description  Returns the currently active pricing band ladder
// @Tags         Pricing Bands
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Active pricing bands"
// @Failure      404 {object} dto.ErrorResponse "No active pricing bands found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/pricing-bands [get]
func (h *BandsHandler) GetActiveBands(c *gin.Context) {
	builder := NewResponseBuilder(c)

	config, err := h.bandsService.GetActive(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}

	if config == nil {
		builder.Error(http.StatusNotFound, dto.ErrCodeNotFound, nil)
		return
	}

	builder.SuccessOK(map[string]interface{}{
		"bands":      config.Bands,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// UpdateBands handles PUT /api/pricing-bands requests.
//
// @Summary      Update pricing bands
// @Description  Activates a new pricing band ladder and invalidates the quote handler's cache
// @Tags         Pricing Bands
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateBandsRequest true "Pricing band ladder"
// @Success      200 {object} dto.SuccessResponse "Updated pricing bands"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/pricing-bands [put]
func (h *BandsHandler) UpdateBands(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateBandsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, err)
		return
	}

	for _, band := range req.Bands {
		if band.Name == "" || band.Price <= 0 {
			builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, nil)
			return
		}
	}

	config, err := h.bandsService.Create(c.Request.Context(), req.Bands, req.CreatedBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}

	if h.quoteHandler != nil {
		h.quoteHandler.InvalidateLadderCache()
	}

	builder.SuccessOK(map[string]interface{}{
		"bands":      config.Bands,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// ListBands handles GET /api/pricing-bands/history requests.
//
// @Summary      List pricing band history
// @Description  Returns past and present pricing band configurations, newest first
// @Tags         Pricing Bands
// @Accept       json
// @Produce      json
// @Param        limit query int false "Maximum configurations to return" default(10)
// @Success      200 {object} dto.SuccessResponse "Pricing band configurations"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/pricing-bands/history [get]
func (h *BandsHandler) ListBands(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	configs, err := h.bandsService.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}

	builder.SuccessOK(map[string]interface{}{
		"configs": configs,
		"count":   len(configs),
	})
}
