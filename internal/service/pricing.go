package service

import (
	"fmt"
	"strings"

	"github.com/pinecut/quote-service/internal/courier"
	"github.com/pinecut/quote-service/internal/domain/model"
)

// DefaultDiscountRate is the multi-parcel discount applied when every
// discounted parcel shares the same static price family.
const DefaultDiscountRate = 0.10

// DefaultDiscountMinParcels is the minimum number of same-family parcels
// before the discount applies.
const DefaultDiscountMinParcels = 2

// PricingEngine assigns prices to packed parcels and selects a live courier
// quote when one is available.
type PricingEngine struct {
	ladder            model.BandLadder
	hardWeightCapKG   float64
	discountRate      float64
	discountMin       int
	allowedCouriers   []string
	preferredCouriers []string
	preferredService  string
}

// PricingOption configures a PricingEngine.
type PricingOption func(*PricingEngine)

// NewPricingEngine creates a PricingEngine with the given options. Without
// options it prices against the default ladder with the standard discount.
func NewPricingEngine(opts ...PricingOption) *PricingEngine {
	e := &PricingEngine{
		ladder:            model.DefaultLadder,
		hardWeightCapKG:   45,
		discountRate:      DefaultDiscountRate,
		discountMin:       DefaultDiscountMinParcels,
		allowedCouriers:   []string{"ups", "parcelforce", "dhl"},
		preferredCouriers: []string{"ups", "parcelforce"},
		preferredService:  "ups-dap-uk-standard",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithLadder replaces the static price ladder.
func WithLadder(ladder model.BandLadder) PricingOption {
	return func(e *PricingEngine) {
		if len(ladder) > 0 {
			e.ladder = ladder
		}
	}
}

// WithHardWeightCap sets the weight above which a parcel cannot be priced.
func WithHardWeightCap(kg float64) PricingOption {
	return func(e *PricingEngine) {
		if kg > 0 {
			e.hardWeightCapKG = kg
		}
	}
}

// WithDiscount sets the multi-parcel discount rate and the minimum number
// of same-family parcels it requires.
func WithDiscount(rate float64, minParcels int) PricingOption {
	return func(e *PricingEngine) {
		if rate >= 0 && rate < 1 {
			e.discountRate = rate
		}
		if minParcels > 1 {
			e.discountMin = minParcels
		}
	}
}

// WithCourierPreferences sets the courier allow-list, the preference order,
// and the single preferred service slug.
func WithCourierPreferences(allowed, preferred []string, preferredService string) PricingOption {
	return func(e *PricingEngine) {
		if len(allowed) > 0 {
			e.allowedCouriers = normalizeSlugs(allowed)
		}
		if len(preferred) > 0 {
			e.preferredCouriers = normalizeSlugs(preferred)
		}
		if preferredService != "" {
			e.preferredService = strings.ToLower(preferredService)
		}
	}
}

func normalizeSlugs(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// PriceStatic assigns a static band price to each parcel in place. A parcel
// over the hard weight cap gets the overweight sentinel service, a zero
// price, and an explanatory error; pricing continues for the rest.
func (e *PricingEngine) PriceStatic(parcels []*model.Parcel) {
	for _, p := range parcels {
		if p.WeightKG > e.hardWeightCapKG {
			p.Service = model.OverweightService
			p.Price = 0
			p.Error = fmt.Sprintf("package exceeds %gkg limit (%gkg)", e.hardWeightCapKG, p.WeightKG)
			continue
		}
		band, ok := e.ladder.Select(p.GirthMM, p.WeightKG)
		if !ok {
			p.Service = model.OverweightService
			p.Price = 0
			p.Error = "no pricing band matches package"
			continue
		}
		p.Service = band.Name
		p.Price = band.Price
		p.Error = ""
	}
}

// SelectAllocation picks the best live quote for a shipment. Only quotes
// from collection services of allowed couriers are eligible; within those,
// couriers are taken in preference order, the preferred service slug wins
// within a courier, and price breaks remaining ties. Returns nil when no
// quote qualifies.
func (e *PricingEngine) SelectAllocation(quotes []courier.Quote, parcelCount int) *model.PriceAllocation {
	eligible := make([]courier.Quote, 0, len(quotes))
	for _, q := range quotes {
		if !strings.EqualFold(q.Service.CollectionType, "Collection") {
			continue
		}
		if q.TotalPrice <= 0 {
			continue
		}
		if !e.courierAllowed(q.Service.CourierName, q.Service.Slug) {
			continue
		}
		eligible = append(eligible, q)
	}
	if len(eligible) == 0 {
		return nil
	}

	best := e.pickPreferred(eligible)
	return &model.PriceAllocation{
		ShipmentTotal: model.RoundMoney(best.TotalPrice),
		ServiceName:   best.Service.Name,
		CourierName:   best.Service.CourierName,
		CourierSlug:   courierSlug(best.Service.CourierName, best.Service.Slug),
		ParcelCount:   parcelCount,
	}
}

// courierAllowed reports whether the quote's courier is on the allow-list.
// Matching uses the courier tag derived from the name or slug, never a
// substring of the display name.
func (e *PricingEngine) courierAllowed(name, slug string) bool {
	tag := courierSlug(name, slug)
	for _, allowed := range e.allowedCouriers {
		if tag == allowed {
			return true
		}
	}
	return false
}

// courierSlug derives a stable lowercase courier tag. The service slug leads
// with the courier name ("ups-dap-uk-standard"), so its first segment is the
// tag; the display name is the fallback.
func courierSlug(name, slug string) string {
	s := strings.ToLower(strings.TrimSpace(slug))
	if s != "" {
		if idx := strings.IndexByte(s, '-'); idx > 0 {
			return s[:idx]
		}
		return s
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// pickPreferred applies the courier preference order to eligible quotes.
func (e *PricingEngine) pickPreferred(eligible []courier.Quote) courier.Quote {
	for _, pref := range e.preferredCouriers {
		var best *courier.Quote
		for i := range eligible {
			q := &eligible[i]
			if courierSlug(q.Service.CourierName, q.Service.Slug) != pref {
				continue
			}
			if strings.ToLower(q.Service.Slug) == e.preferredService {
				return *q
			}
			if best == nil || q.TotalPrice < best.TotalPrice {
				best = q
			}
		}
		if best != nil {
			return *best
		}
	}

	// No preferred courier matched; fall back to the cheapest eligible quote.
	best := eligible[0]
	for _, q := range eligible[1:] {
		if q.TotalPrice < best.TotalPrice {
			best = q
		}
	}
	return best
}

// Totals computes the shipment subtotal, discount, and total from statically
// priced parcels. The discount applies only when at least discountMin parcels
// share one price family and no other family reaches that count; overweight
// parcels contribute nothing.
func (e *PricingEngine) Totals(parcels []*model.Parcel) (subtotal, discount, total float64, discountMessage string) {
	familyCounts := make(map[string]int)
	familySums := make(map[string]float64)

	for _, p := range parcels {
		if p.Service == model.OverweightService || p.Service == "" {
			continue
		}
		subtotal = model.RoundMoney(subtotal + p.Price)
		fam := e.familyOf(p.Service)
		if fam == "" {
			continue
		}
		familyCounts[fam]++
		familySums[fam] = model.RoundMoney(familySums[fam] + p.Price)
	}

	var discountFamily string
	for fam, count := range familyCounts {
		if count < e.discountMin {
			continue
		}
		if discountFamily != "" {
			// More than one qualifying family: no discount.
			discountFamily = ""
			break
		}
		discountFamily = fam
	}

	if discountFamily != "" && e.discountRate > 0 {
		discount = model.RoundMoney(familySums[discountFamily] * e.discountRate)
		discountMessage = fmt.Sprintf("%.0f%% multi-package discount applied", e.discountRate*100)
	}

	total = model.RoundMoney(subtotal - discount)
	return subtotal, discount, total, discountMessage
}

// familyOf resolves a service name to its price family via the ladder.
func (e *PricingEngine) familyOf(serviceName string) string {
	for _, band := range e.ladder {
		if band.Name == serviceName {
			return band.Family
		}
	}
	return ""
}
