// Package model defines the core domain entities for the quote service.
package model

// Item is a single order line as submitted by the storefront.
// Dimensions are millimetres, weight is kilograms. Quantity defaults to 1.
//
// @Description Order line item with board dimensions and quantity
type Item struct {
	// SKU is the optional product identifier.
	SKU string `json:"sku,omitempty"`
	// Name is the display name of the product.
	Name string `json:"name"`
	// LengthMM is the board length in millimetres.
	LengthMM float64 `json:"length_mm"`
	// WidthMM is the board width in millimetres.
	WidthMM float64 `json:"width_mm"`
	// ThicknessMM is the board thickness in millimetres.
	ThicknessMM float64 `json:"thickness_mm"`
	// WeightKG is the weight of a single board. When zero it is derived
	// from volume and timber density during expansion.
	WeightKG float64 `json:"weight_kg,omitempty"`
	// Qty is the number of boards ordered.
	Qty int `json:"qty,omitempty"`
	// KeepTogether marks items that must ship as one physical stack
	// (e.g. tongue-and-groove board sets) instead of being distributed
	// across parcels individually.
	KeepTogether bool `json:"keep_together,omitempty"`
}

// UnitCount returns the effective number of physical boards for the item.
func (i Item) UnitCount() int {
	if i.Qty < 1 {
		return 1
	}
	return i.Qty
}

// VolumeM3 returns the volume of a single board in cubic metres.
func (i Item) VolumeM3() float64 {
	return (i.LengthMM / 1000) * (i.WidthMM / 1000) * (i.ThicknessMM / 1000)
}

// Board is one packable unit after quantity expansion. Regular items expand
// into Quantity=1 boards; keep-together bundles stay as a single Board
// carrying the full quantity for height stacking.
type Board struct {
	Name        string
	LengthMM    float64
	WidthMM     float64
	ThicknessMM float64
	// WeightKG is the weight of a single board, always populated.
	WeightKG float64
	// Quantity is 1 for expanded units and the bundle size for
	// keep-together stacks.
	Quantity int
	// Bundle marks keep-together stacks.
	Bundle bool
}

// TotalWeightKG returns the weight of the whole board stack.
func (b Board) TotalWeightKG() float64 {
	return RoundMoney(b.WeightKG * float64(b.Quantity))
}

// StackHeightMM returns the stacked height of the board (thickness for a
// single unit, thickness times quantity for bundles).
func (b Board) StackHeightMM() float64 {
	return b.ThicknessMM * float64(b.Quantity)
}

// VolumeMM3 returns the board volume in cubic millimetres, used by the
// girth-first strategy to order boards smallest-first.
func (b Board) VolumeMM3() float64 {
	return b.LengthMM * b.WidthMM * b.ThicknessMM
}
