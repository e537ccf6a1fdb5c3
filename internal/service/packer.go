package service

import (
	"math"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/pinecut/quote-service/internal/domain/model"
)

// Packing strategy names, selected at startup via configuration.
const (
	// StrategyWeightBalanced distributes boards so parcel weights stay
	// close to an even split under the standard weight cap.
	StrategyWeightBalanced = "weight-balanced"
	// StrategyGirthFirst fills small-carrier parcels (girth and weight
	// capped) first and defers the rest to oversize parcels.
	StrategyGirthFirst = "girth-first"
)

// PackerConfig holds the caps and padding shared by all strategies.
type PackerConfig struct {
	// PaddingMM is the packaging clearance added around board footprints.
	PaddingMM float64
	// MaxWeightKG is the standard per-parcel weight cap.
	MaxWeightKG float64
	// OversizeMaxWeightKG is the oversized-carrier weight cap.
	OversizeMaxWeightKG float64
	// GirthCapMM is the small-carrier girth cap used by the girth-first
	// strategy and by live-quote eligibility.
	GirthCapMM float64
}

// DefaultPackerConfig returns the standard carrier caps.
func DefaultPackerConfig() PackerConfig {
	return PackerConfig{
		PaddingMM:           30,
		MaxWeightKG:         30,
		OversizeMaxWeightKG: 45,
		GirthCapMM:          3000,
	}
}

// Packer assigns every board to a parcel. Packing never fails: boards that
// fit nowhere get a parcel of their own and are surfaced by pricing instead.
type Packer interface {
	Pack(boards []model.Board) []*model.Parcel
}

// NewPacker returns the packer for the named strategy. Unknown names fall
// back to the weight-balanced default.
func NewPacker(strategy string, cfg PackerConfig) Packer {
	if cfg.PaddingMM < 0 {
		cfg.PaddingMM = 0
	}
	switch strategy {
	case StrategyGirthFirst:
		return &girthFirstPacker{cfg: cfg}
	case StrategyWeightBalanced:
		return &weightBalancedPacker{cfg: cfg}
	default:
		log.Warn().Str("strategy", strategy).Msg("Unknown packing strategy, using weight-balanced")
		return &weightBalancedPacker{cfg: cfg}
	}
}

// splitBoards separates keep-together bundles from regular unit boards.
func splitBoards(boards []model.Board) (bundles, singles []model.Board) {
	for _, b := range boards {
		if b.Bundle {
			bundles = append(bundles, b)
		} else {
			singles = append(singles, b)
		}
	}
	return bundles, singles
}

// packBundles creates one parcel per bundle, splitting a bundle into the
// minimum number of equal-ish stacks when its weight exceeds the standard
// cap. Sub-stacks keep the full board footprint; only the stack height and
// weight shrink. Ceil division rounds the per-stack count up, so a stack of
// indivisible heavy boards can still land over the cap (3 boards of 16 kg
// split into 2 stacks of 2+1, the first weighing 32 kg).
func packBundles(bundles []model.Board, cfg PackerConfig) []*model.Parcel {
	var parcels []*model.Parcel

	for _, bundle := range bundles {
		total := bundle.TotalWeightKG()
		if total <= cfg.MaxWeightKG {
			p := &model.Parcel{}
			p.Add(bundle, cfg.PaddingMM)
			parcels = append(parcels, p)
			continue
		}

		needed := int(math.Ceil(total / cfg.MaxWeightKG))
		perStack := int(math.Ceil(float64(bundle.Quantity) / float64(needed)))
		log.Debug().
			Str("bundle", bundle.Name).
			Float64("weight_kg", total).
			Int("stacks", needed).
			Msg("Splitting overweight bundle")

		remaining := bundle.Quantity
		for remaining > 0 {
			count := perStack
			if count > remaining {
				count = remaining
			}
			stack := bundle
			stack.Quantity = count
			p := &model.Parcel{}
			p.Add(stack, cfg.PaddingMM)
			parcels = append(parcels, p)
			remaining -= count
		}
	}

	return parcels
}

// weightBalancedPacker implements best-fit placement that keeps parcel
// weights close to totalWeight / targetParcelCount.
type weightBalancedPacker struct {
	cfg PackerConfig
}

func (wp *weightBalancedPacker) Pack(boards []model.Board) []*model.Parcel {
	bundles, singles := splitBoards(boards)
	parcels := packBundles(bundles, wp.cfg)

	if len(singles) == 0 {
		return parcels
	}

	// Heaviest boards first so the balance target is approached from above.
	sort.SliceStable(singles, func(i, j int) bool {
		if singles[i].WeightKG != singles[j].WeightKG {
			return singles[i].WeightKG > singles[j].WeightKG
		}
		if singles[i].LengthMM != singles[j].LengthMM {
			return singles[i].LengthMM > singles[j].LengthMM
		}
		return singles[i].WidthMM > singles[j].WidthMM
	})

	var totalWeight float64
	for _, b := range singles {
		totalWeight += b.WeightKG
	}

	targetCount := int(math.Ceil(totalWeight / wp.cfg.MaxWeightKG))
	if targetCount < 1 {
		targetCount = 1
	}
	targetWeight := totalWeight / float64(targetCount)

	bins := make([]*model.Parcel, targetCount)
	for i := range bins {
		bins[i] = &model.Parcel{}
	}

	for _, board := range singles {
		best := -1
		bestScore := math.MaxFloat64
		for i, bin := range bins {
			_, _, _, newWeight, _ := bin.Extend(board, wp.cfg.PaddingMM)
			if newWeight > wp.cfg.MaxWeightKG {
				continue
			}
			score := math.Abs(newWeight - targetWeight)
			if score < bestScore {
				bestScore = score
				best = i
			}
		}
		if best < 0 {
			// No bin can take the board under the cap: open a fresh
			// parcel rather than overloading an existing one.
			bins = append(bins, &model.Parcel{})
			best = len(bins) - 1
		}
		bins[best].Add(board, wp.cfg.PaddingMM)
	}

	for _, bin := range bins {
		if !bin.Empty() {
			parcels = append(parcels, bin)
		}
	}

	log.Debug().
		Int("boards", len(boards)).
		Int("parcels", len(parcels)).
		Float64("target_weight_kg", model.RoundMoney(targetWeight)).
		Msg("Weight-balanced packing complete")

	return parcels
}

// girthFirstPacker implements the two-phase strategy: small-carrier parcels
// capped by girth and standard weight first, then oversize parcels capped
// only by the oversized-carrier weight.
type girthFirstPacker struct {
	cfg PackerConfig
}

func (gp *girthFirstPacker) Pack(boards []model.Board) []*model.Parcel {
	bundles, singles := splitBoards(boards)
	parcels := packBundles(bundles, gp.cfg)

	if len(singles) == 0 {
		return parcels
	}

	// Smallest boards first so small-carrier parcels fill tightly.
	sort.SliceStable(singles, func(i, j int) bool {
		return singles[i].VolumeMM3() < singles[j].VolumeMM3()
	})

	var small, oversize []*model.Parcel
	var deferred []model.Board

	for _, board := range singles {
		if gp.placeSmall(board, &small) {
			continue
		}
		deferred = append(deferred, board)
	}

	for _, board := range deferred {
		gp.placeOversize(board, &oversize)
	}

	parcels = append(parcels, small...)
	parcels = append(parcels, oversize...)

	log.Debug().
		Int("small_parcels", len(small)).
		Int("oversize_parcels", len(oversize)).
		Int("bundle_parcels", len(parcels)-len(small)-len(oversize)).
		Msg("Girth-first packing complete")

	return parcels
}

// placeSmall tries existing small-carrier parcels, then a fresh one. It
// returns false when the board cannot satisfy the small-carrier caps at all.
func (gp *girthFirstPacker) placeSmall(board model.Board, small *[]*model.Parcel) bool {
	for _, p := range *small {
		_, _, _, newWeight, newGirth := p.Extend(board, gp.cfg.PaddingMM)
		if newGirth <= gp.cfg.GirthCapMM && newWeight <= gp.cfg.MaxWeightKG {
			p.Add(board, gp.cfg.PaddingMM)
			return true
		}
	}

	fresh := &model.Parcel{}
	_, _, _, newWeight, newGirth := fresh.Extend(board, gp.cfg.PaddingMM)
	if newGirth <= gp.cfg.GirthCapMM && newWeight <= gp.cfg.MaxWeightKG {
		fresh.Add(board, gp.cfg.PaddingMM)
		*small = append(*small, fresh)
		return true
	}
	return false
}

// placeOversize adds the board to the first oversize parcel with weight
// headroom, or opens a new one. Oversize parcels have no girth cap.
func (gp *girthFirstPacker) placeOversize(board model.Board, oversize *[]*model.Parcel) {
	for _, p := range *oversize {
		_, _, _, newWeight, _ := p.Extend(board, gp.cfg.PaddingMM)
		if newWeight <= gp.cfg.OversizeMaxWeightKG {
			p.Add(board, gp.cfg.PaddingMM)
			return
		}
	}
	fresh := &model.Parcel{}
	fresh.Add(board, gp.cfg.PaddingMM)
	*oversize = append(*oversize, fresh)
}
