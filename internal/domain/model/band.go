package model

// PricingBand is one rung of a static fallback price ladder. Bands are
// ordered ascending by girth/weight ceiling; a zero ceiling means unbounded,
// so the final band acts as the catch-all.
//
// @Description Static pricing tier selected by parcel girth and weight
type PricingBand struct {
	// Name is the service label shown to the customer.
	Name string `json:"name" yaml:"name"`
	// Family groups bands that belong to the same carrier ladder. The
	// multi-package discount applies only within one family.
	Family string `json:"family" yaml:"family"`
	// MaxGirthMM is the girth ceiling in millimetres, 0 for unbounded.
	MaxGirthMM float64 `json:"max_girth_mm,omitempty" yaml:"max_girth_mm"`
	// MaxWeightKG is the weight ceiling in kilograms, 0 for unbounded.
	MaxWeightKG float64 `json:"max_weight_kg,omitempty" yaml:"max_weight_kg"`
	// Price is the band price in GBP.
	Price float64 `json:"price" yaml:"price"`
}

// Matches reports whether a parcel with the given girth and weight fits
// under the band's ceilings.
func (b PricingBand) Matches(girthMM, weightKG float64) bool {
	if b.MaxGirthMM > 0 && girthMM > b.MaxGirthMM {
		return false
	}
	if b.MaxWeightKG > 0 && weightKG > b.MaxWeightKG {
		return false
	}
	return true
}

// BandLadder is an ordered list of pricing bands. First match wins; when
// nothing matches the last band is used as the catch-all.
type BandLadder []PricingBand

// Select returns the band for the given girth and weight.
// The bool result is false only for an empty ladder.
func (l BandLadder) Select(girthMM, weightKG float64) (PricingBand, bool) {
	if len(l) == 0 {
		return PricingBand{}, false
	}
	for _, band := range l {
		if band.Matches(girthMM, weightKG) {
			return band, true
		}
	}
	return l[len(l)-1], true
}

// DefaultLadder is the DHL Express static fallback ladder used when no
// band configuration is supplied.
var DefaultLadder = BandLadder{
	{Name: "DHL Express Medium", Family: "DHL Express", MaxGirthMM: 3800, Price: 73.51},
	{Name: "DHL Express Large", Family: "DHL Express", MaxGirthMM: 4200, Price: 79.76},
	{Name: "DHL Express XL", Family: "DHL Express", MaxGirthMM: 5000, Price: 94.67},
	{Name: "DHL Express XXL", Family: "DHL Express", Price: 109.56},
}
