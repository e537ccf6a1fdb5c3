package http

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pinecut/quote-service/internal/domain/dto"
	"github.com/pinecut/quote-service/internal/domain/model"
	"github.com/pinecut/quote-service/internal/i18n"
	"github.com/pinecut/quote-service/internal/metrics"
	"github.com/pinecut/quote-service/internal/middleware"
	"github.com/pinecut/quote-service/internal/service"
)

// ladderCache provides thread-safe caching of the active pricing ladder.
type ladderCache struct {
	ladder    atomic.Value // holds model.BandLadder
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newLadderCache creates a new ladder cache with the given TTL.
func newLadderCache(ttl time.Duration) *ladderCache {
	c := &ladderCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached ladder if valid, or nil if cache is expired/empty.
func (c *ladderCache) get() model.BandLadder {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if ladder := c.ladder.Load(); ladder != nil {
				if l, ok := ladder.(model.BandLadder); ok {
					return l
				}
			}
		}
	}
	return nil
}

// set stores the ladder in the cache with TTL.
func (c *ladderCache) set(ladder model.BandLadder) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return // Already cached by another goroutine
		}
	}

	c.ladder.Store(ladder)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *ladderCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// Handler provides HTTP handlers for quote routes.
type Handler struct {
	quoter       service.Quoter
	bandsService service.BandsService
	ladderCache  *ladderCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLadderCacheTTL sets the TTL for band ladder caching.
func WithLadderCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.ladderCache = newLadderCache(ttl)
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(quoter service.Quoter, bandsService service.BandsService, opts ...HandlerOption) *Handler {
	h := &Handler{
		quoter:       quoter,
		bandsService: bandsService,
		ladderCache:  newLadderCache(30 * time.Second), // Default 30s cache
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// getLadder retrieves the active pricing ladder from cache or database.
func (h *Handler) getLadder(ctx context.Context) model.BandLadder {
	// Check cache first
	if ladder := h.ladderCache.get(); ladder != nil {
		return ladder
	}

	// Cache miss - fetch from database
	if h.bandsService == nil {
		return nil
	}

	// Use a timeout for database fetch
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	config, err := h.bandsService.GetActive(ctx)
	if err != nil || config == nil || len(config.Bands) == 0 {
		if err != nil {
			metrics.RecordBandConfigReload("error")
		}
		return nil
	}
	metrics.RecordBandConfigReload("success")

	ladder := config.Ladder()
	h.ladderCache.set(ladder)
	return ladder
}

// InvalidateLadderCache invalidates the pricing ladder cache.
// Call this when the band configuration changes.
func (h *Handler) InvalidateLadderCache() {
	h.ladderCache.invalidate()
}

// InstantQuote handles POST /api/instant-quote requests.
//
// @Summary      Generate a shipping quote
// @Description  Packs the requested boards into parcels and prices the shipment, using a live courier quote when one is available and static girth/weight bands otherwise. Supports idempotency via Idempotency-Key header.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.QuoteRequest true "Cart items and delivery destination"
// @Success      200 {object} dto.QuoteResponse "Complete shipping quote"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid request signature"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/instant-quote [post]
func (h *Handler) InstantQuote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if verr, ok := err.(*dto.ValidationError); ok {
			builder.ErrorWithMessage(http.StatusBadRequest, verr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	c.Set(middleware.ContextKeyCartID, req.CartID)

	var (
		resp dto.QuoteResponse
		err  error
	)
	if ladder := h.getLadder(c.Request.Context()); len(ladder) > 0 {
		resp, err = h.quoter.GenerateQuoteWithLadder(c.Request.Context(), req, ladder)
	} else {
		resp, err = h.quoter.GenerateQuote(c.Request.Context(), req)
	}
	if err != nil {
		if verr, ok := err.(*dto.ValidationError); ok {
			builder.ErrorWithMessage(http.StatusBadRequest, verr.Error(), err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	c.Set(middleware.ContextKeyQuoteSource, resp.Source)

	// The quote body is the response contract itself, not wrapped in an
	// envelope, so storefront clients can consume it directly.
	c.JSON(http.StatusOK, resp)
}
