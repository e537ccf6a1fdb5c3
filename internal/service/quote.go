package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pinecut/quote-service/internal/courier"
	"github.com/pinecut/quote-service/internal/domain/dto"
	"github.com/pinecut/quote-service/internal/domain/model"
	"github.com/pinecut/quote-service/internal/metrics"
)

// QuoteProvider fetches live shipment quotes from the external courier API.
type QuoteProvider interface {
	GetQuotes(ctx context.Context, parcels []*model.Parcel, destination dto.Destination) ([]courier.Quote, error)
}

// Quoter defines the quote generation operations.
type Quoter interface {
	// GenerateQuote produces a complete quote for the request using the
	// configured static ladder.
	GenerateQuote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	// GenerateQuoteWithLadder prices against a caller-supplied ladder
	// (used when band configuration is loaded from storage).
	GenerateQuoteWithLadder(ctx context.Context, req dto.QuoteRequest, ladder model.BandLadder) (dto.QuoteResponse, error)
}

// QuoteOption configures a QuoteService.
type QuoteOption func(*QuoteService)

// QuoteService orchestrates a quote request: item expansion, packing, the
// live-quote attempt with static fallback, discounting, and response
// assembly. All state is request-local; the service is safe for concurrent
// use.
type QuoteService struct {
	expander        *Expander
	packer          Packer
	pricing         *PricingEngine
	provider        QuoteProvider
	liveTimeout     time.Duration
	eligGirthMM     float64
	eligMaxWeightKG float64
	currency        string
}

// NewQuoteService creates a QuoteService with the given options.
func NewQuoteService(opts ...QuoteOption) *QuoteService {
	s := &QuoteService{
		expander:        NewExpander(DefaultDensityKGM3),
		packer:          NewPacker(StrategyWeightBalanced, DefaultPackerConfig()),
		pricing:         NewPricingEngine(),
		liveTimeout:     10 * time.Second,
		eligGirthMM:     3000,
		eligMaxWeightKG: 30,
		currency:        "GBP",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithExpander sets the item expander.
func WithExpander(e *Expander) QuoteOption {
	return func(s *QuoteService) {
		if e != nil {
			s.expander = e
		}
	}
}

// WithPacker sets the packing strategy.
func WithPacker(p Packer) QuoteOption {
	return func(s *QuoteService) {
		if p != nil {
			s.packer = p
		}
	}
}

// WithPricingEngine sets the pricing engine.
func WithPricingEngine(e *PricingEngine) QuoteOption {
	return func(s *QuoteService) {
		if e != nil {
			s.pricing = e
		}
	}
}

// WithQuoteProvider enables live quoting through the given provider.
func WithQuoteProvider(p QuoteProvider) QuoteOption {
	return func(s *QuoteService) {
		s.provider = p
	}
}

// WithLiveTimeout bounds the live-quote call.
func WithLiveTimeout(d time.Duration) QuoteOption {
	return func(s *QuoteService) {
		if d > 0 {
			s.liveTimeout = d
		}
	}
}

// WithEligibilityLimits sets the girth and weight thresholds below which a
// parcel may be quoted live.
func WithEligibilityLimits(girthMM, maxWeightKG float64) QuoteOption {
	return func(s *QuoteService) {
		if girthMM > 0 {
			s.eligGirthMM = girthMM
		}
		if maxWeightKG > 0 {
			s.eligMaxWeightKG = maxWeightKG
		}
	}
}

// GenerateQuote produces a quote using the engine's configured ladder.
func (s *QuoteService) GenerateQuote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error) {
	return s.generate(ctx, req, s.pricing)
}

// GenerateQuoteWithLadder produces a quote against the supplied ladder.
func (s *QuoteService) GenerateQuoteWithLadder(ctx context.Context, req dto.QuoteRequest, ladder model.BandLadder) (dto.QuoteResponse, error) {
	if len(ladder) == 0 {
		return s.generate(ctx, req, s.pricing)
	}
	engine := *s.pricing
	engine.ladder = ladder
	return s.generate(ctx, req, &engine)
}

func (s *QuoteService) generate(ctx context.Context, req dto.QuoteRequest, engine *PricingEngine) (dto.QuoteResponse, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return dto.QuoteResponse{}, err
	}

	boards := s.expander.Expand(req.Items)
	parcels := s.packer.Pack(boards)
	if len(parcels) == 0 {
		return dto.QuoteResponse{}, fmt.Errorf("no parcels could be packed from request")
	}

	eligible, staticOnly := s.partition(parcels)

	alloc := s.attemptLiveQuote(ctx, req, eligible)
	if alloc != nil {
		for _, p := range eligible {
			p.Service = alloc.ServiceName
			p.Price = 0
			p.Error = ""
		}
		engine.PriceStatic(staticOnly)
	} else {
		// Live unavailable or disabled: every parcel is priced statically.
		engine.PriceStatic(parcels)
		staticOnly = parcels
	}

	subtotal, discount, total, discountMessage := engine.Totals(staticOnly)
	if alloc != nil {
		subtotal = model.RoundMoney(subtotal + alloc.ShipmentTotal)
		total = model.RoundMoney(total + alloc.ShipmentTotal)
	}

	resp := s.assemble(req, parcels, alloc, subtotal, discount, total, discountMessage)

	metrics.RecordQuote(resp.Source, len(parcels), time.Since(start))
	log.Debug().
		Str("cart_id", req.CartID).
		Int("parcel_count", len(parcels)).
		Str("source", resp.Source).
		Float64("total", resp.Total).
		Dur("duration", time.Since(start)).
		Msg("Quote generated")

	return resp, nil
}

// partition splits parcels into live-quote eligible and static-only per the
// girth and weight thresholds.
func (s *QuoteService) partition(parcels []*model.Parcel) (eligible, staticOnly []*model.Parcel) {
	for _, p := range parcels {
		if p.GirthMM <= s.eligGirthMM && p.WeightKG <= s.eligMaxWeightKG {
			eligible = append(eligible, p)
		} else {
			staticOnly = append(staticOnly, p)
		}
	}
	return eligible, staticOnly
}

// attemptLiveQuote makes the single batched live-quote call for eligible
// parcels. Any failure is logged and absorbed; the caller falls back to
// static pricing.
func (s *QuoteService) attemptLiveQuote(ctx context.Context, req dto.QuoteRequest, eligible []*model.Parcel) *model.PriceAllocation {
	if s.provider == nil || len(eligible) == 0 {
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.liveTimeout)
	defer cancel()

	quotes, err := s.provider.GetQuotes(callCtx, eligible, req.Destination)
	if err != nil {
		metrics.RecordLiveQuoteOutcome("error")
		log.Warn().
			Err(err).
			Str("cart_id", req.CartID).
			Int("eligible_parcels", len(eligible)).
			Msg("Live quote failed, falling back to static pricing")
		return nil
	}

	alloc := s.pricing.SelectAllocation(quotes, len(eligible))
	if alloc == nil {
		metrics.RecordLiveQuoteOutcome("no_match")
		log.Debug().
			Str("cart_id", req.CartID).
			Int("quote_count", len(quotes)).
			Msg("No live quote matched courier preferences")
		return nil
	}

	metrics.RecordLiveQuoteOutcome("success")
	return alloc
}

// assemble builds the response body from priced parcels.
func (s *QuoteService) assemble(req dto.QuoteRequest, parcels []*model.Parcel, alloc *model.PriceAllocation,
	subtotal, discount, total float64, discountMessage string) dto.QuoteResponse {

	source := model.SourceStatic
	if alloc != nil {
		source = model.SourceLive
	}

	breakdown := make([]dto.ServicePrice, 0, len(parcels))
	details := make([]dto.PackageDetail, 0, len(parcels))
	var firstError string

	for i, p := range parcels {
		breakdown = append(breakdown, dto.ServicePrice{Service: p.Service, Price: p.Price})
		details = append(details, packageDetail(i+1, p))
		if p.Error != "" && firstError == "" {
			firstError = p.Error
		}
	}

	resp := dto.QuoteResponse{
		Status:           "done",
		Total:            total,
		Currency:         s.currency,
		Packages:         parcels,
		DetailedPackages: details,
		Breakdown:        breakdown,
		Source:           string(source),
		DiscountMessage:  discountMessage,
		Copy:             quoteCopy(len(parcels), source),
		Error:            firstError,
	}
	if len(parcels) > 1 {
		resp.Subtotal = subtotal
		resp.Discount = discount
	}
	if alloc != nil {
		resp.ShipmentTotal = alloc.ShipmentTotal
	}
	return resp
}

// packageDetail renders one parcel for display: dimensions in whole
// centimetres, weight in kilograms.
func packageDetail(number int, p *model.Parcel) dto.PackageDetail {
	return dto.PackageDetail{
		PackageNumber: number,
		Items:         p.Items,
		TotalWeight:   fmt.Sprintf("%g kg", model.RoundMoney(p.WeightKG)),
		Dimensions: fmt.Sprintf("%d x %d x %d cm",
			int(math.Ceil(float64(p.LengthMM)/10)),
			int(math.Ceil(float64(p.WidthMM)/10)),
			int(math.Ceil(float64(p.HeightMM)/10))),
		Service: p.Service,
		Price:   p.Price,
	}
}

// quoteCopy is the storefront line shown next to the quoted price.
func quoteCopy(parcelCount int, source model.QuoteSource) string {
	var b strings.Builder
	if parcelCount == 1 {
		b.WriteString("Your order ships as 1 package.")
	} else {
		fmt.Fprintf(&b, "Your order ships as %d packages.", parcelCount)
	}
	if source == model.SourceLive {
		b.WriteString(" Price confirmed with our courier.")
	}
	return b.String()
}
