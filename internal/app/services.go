// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/pinecut/quote-service/config"
	"github.com/pinecut/quote-service/internal/courier"
	"github.com/pinecut/quote-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Quoter service.Quoter
}

// InitializeServices initializes the quote pipeline: expander, packer,
// pricing engine and (when enabled) the live courier client.
func InitializeServices(cfg config.Config) *ServiceComponents {
	expander := service.NewExpander(cfg.Packing.DensityKGM3)

	packerCfg := service.DefaultPackerConfig()
	if cfg.Packing.PaddingMM > 0 {
		packerCfg.PaddingMM = cfg.Packing.PaddingMM
	}
	if cfg.Packing.MaxWeightKG > 0 {
		packerCfg.MaxWeightKG = cfg.Packing.MaxWeightKG
	}
	if cfg.Packing.OversizeMaxWeightKG > 0 {
		packerCfg.OversizeMaxWeightKG = cfg.Packing.OversizeMaxWeightKG
	}
	if cfg.Packing.GirthCapMM > 0 {
		packerCfg.GirthCapMM = cfg.Packing.GirthCapMM
	}
	packer := service.NewPacker(cfg.Packing.Strategy, packerCfg)

	ladder, err := config.LoadBands(cfg.Pricing.BandsFile)
	if err != nil {
		log.Warn().Err(err).Str("file", cfg.Pricing.BandsFile).
			Msg("Failed to load pricing bands file - using defaults")
		ladder = nil
	}

	pricingOpts := []service.PricingOption{
		service.WithHardWeightCap(cfg.Packing.OversizeMaxWeightKG),
		service.WithDiscount(cfg.Pricing.DiscountRate, cfg.Pricing.DiscountMinParcels),
		service.WithCourierPreferences(
			cfg.Courier.AllowedCouriers,
			cfg.Courier.PreferredCouriers,
			cfg.Courier.PreferredServiceSlug,
		),
	}
	if len(ladder) > 0 {
		pricingOpts = append(pricingOpts, service.WithLadder(ladder))
	}
	pricing := service.NewPricingEngine(pricingOpts...)

	quoteOpts := []service.QuoteOption{
		service.WithExpander(expander),
		service.WithPacker(packer),
		service.WithPricingEngine(pricing),
		service.WithLiveTimeout(cfg.Courier.Timeout),
		service.WithEligibilityLimits(cfg.Packing.GirthCapMM, cfg.Packing.MaxWeightKG),
	}

	if cfg.Courier.Enabled {
		if cfg.Courier.ClientID == "" || cfg.Courier.ClientSecret == "" {
			log.Warn().Msg("Courier quotes enabled but credentials missing - live pricing disabled")
		} else {
			quoteOpts = append(quoteOpts, service.WithQuoteProvider(courier.NewClient(cfg.Courier)))
			log.Info().Str("base_url", cfg.Courier.BaseURL).Msg("Live courier quotes enabled")
		}
	}

	return &ServiceComponents{
		Quoter: service.NewQuoteService(quoteOpts...),
	}
}
