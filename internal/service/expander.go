package service

import (
	"github.com/rs/zerolog/log"

	"github.com/pinecut/quote-service/internal/domain/model"
)

// DefaultDensityKGM3 is the pine density used to derive missing weights.
const DefaultDensityKGM3 = 520

// Expander turns quantity-bearing order lines into packable unit boards.
// Keep-together items are not expanded: they stay as a single bundle board
// carrying the full quantity so the packer can stack them in height.
type Expander struct {
	densityKGM3 float64
}

// NewExpander creates an Expander with the given timber density. A
// non-positive density falls back to the default.
func NewExpander(densityKGM3 float64) *Expander {
	if densityKGM3 <= 0 {
		densityKGM3 = DefaultDensityKGM3
	}
	return &Expander{densityKGM3: densityKGM3}
}

// Expand converts items into boards, preserving input order. Weight is
// derived from volume and density when the item does not declare one.
func (e *Expander) Expand(items []model.Item) []model.Board {
	boards := make([]model.Board, 0, len(items))

	for _, item := range items {
		weight := item.WeightKG
		if weight <= 0 {
			weight = model.RoundMoney(item.VolumeM3() * e.densityKGM3)
			log.Debug().
				Str("item", item.Name).
				Float64("weight_kg", weight).
				Msg("Derived board weight from volume")
		}

		qty := item.UnitCount()
		if item.KeepTogether {
			boards = append(boards, model.Board{
				Name:        item.Name,
				LengthMM:    item.LengthMM,
				WidthMM:     item.WidthMM,
				ThicknessMM: item.ThicknessMM,
				WeightKG:    weight,
				Quantity:    qty,
				Bundle:      true,
			})
			continue
		}

		for i := 0; i < qty; i++ {
			boards = append(boards, model.Board{
				Name:        item.Name,
				LengthMM:    item.LengthMM,
				WidthMM:     item.WidthMM,
				ThicknessMM: item.ThicknessMM,
				WeightKG:    weight,
				Quantity:    1,
			})
		}
	}

	return boards
}
