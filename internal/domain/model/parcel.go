package model

import "fmt"

// Parcel is a mutable accumulator of boards. Dimensions grow as boards are
// inserted: length and width take the maximum footprint plus padding, height
// sums stacked thicknesses. Girth is recomputed after every mutation.
//
// @Description Packed parcel with derived dimensions, weight and pricing
type Parcel struct {
	LengthMM float64 `json:"length_mm"`
	WidthMM  float64 `json:"width_mm"`
	HeightMM float64 `json:"height_mm"`
	WeightKG float64 `json:"weight_kg"`
	GirthMM  float64 `json:"girth_mm"`
	// Items holds a display line per packed board.
	Items []string `json:"items"`
	// Service and Price are assigned by the pricing engine.
	Service string  `json:"service,omitempty"`
	Price   float64 `json:"price"`
	// Error is set for unshippable parcels (e.g. overweight); the parcel
	// is still returned, not dropped.
	Error string `json:"error,omitempty"`
}

// Girth computes the standard courier billing dimension for a box.
func Girth(lengthMM, widthMM, heightMM float64) float64 {
	return lengthMM + 2*(widthMM+heightMM)
}

// Recalc refreshes the derived girth from the current dimensions.
func (p *Parcel) Recalc() {
	p.GirthMM = Girth(p.LengthMM, p.WidthMM, p.HeightMM)
}

// Empty reports whether the parcel has no boards yet.
func (p *Parcel) Empty() bool {
	return len(p.Items) == 0
}

// Extend returns the dimensions, weight and girth the parcel would have
// after adding the board, without mutating the parcel. Used by packers to
// test caps before committing an insertion.
func (p *Parcel) Extend(b Board, paddingMM float64) (lengthMM, widthMM, heightMM, weightKG, girthMM float64) {
	if p.Empty() {
		lengthMM = b.LengthMM + 2*paddingMM
		widthMM = b.WidthMM + 2*paddingMM
		heightMM = b.StackHeightMM() + 2*paddingMM
		weightKG = b.TotalWeightKG()
	} else {
		lengthMM = max(p.LengthMM, b.LengthMM+2*paddingMM)
		widthMM = max(p.WidthMM, b.WidthMM+2*paddingMM)
		heightMM = p.HeightMM + b.StackHeightMM()
		weightKG = RoundMoney(p.WeightKG + b.TotalWeightKG())
	}
	girthMM = Girth(lengthMM, widthMM, heightMM)
	return
}

// Add inserts the board into the parcel, updating dimensions, weight,
// girth and the item list.
func (p *Parcel) Add(b Board, paddingMM float64) {
	p.LengthMM, p.WidthMM, p.HeightMM, p.WeightKG, _ = p.Extend(b, paddingMM)
	p.Items = append(p.Items, boardLabel(b))
	p.Recalc()
}

// BoardCount returns the number of physical boards in the parcel.
func (p *Parcel) BoardCount() int {
	return len(p.Items)
}

// boardLabel renders the storefront display line for one packed board,
// dimensions in millimetres.
func boardLabel(b Board) string {
	label := fmt.Sprintf("%s (%g x %g x %g)", b.Name, b.LengthMM, b.WidthMM, b.ThicknessMM)
	if b.Bundle && b.Quantity > 1 {
		return fmt.Sprintf("%s x%d - %g kg", label, b.Quantity, RoundMoney(b.TotalWeightKG()))
	}
	return fmt.Sprintf("%s - %g kg", label, RoundMoney(b.WeightKG))
}
