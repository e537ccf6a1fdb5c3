package model

// QuoteSource indicates where the winning prices came from.
type QuoteSource string

const (
	// SourceLive means at least one parcel was priced by the live
	// courier-quote API.
	SourceLive QuoteSource = "live"
	// SourceStatic means every parcel fell back to the static ladder.
	SourceStatic QuoteSource = "static"
)

// OverweightService is the sentinel service name for parcels that exceed
// the hard weight ceiling and cannot be shipped.
const OverweightService = "OVERWEIGHT"

// PriceAllocation records a live quote that covers the whole eligible
// shipment as a single charge. Covered parcels carry a zero marginal price;
// the shipment total is combined with any static parcel prices at the end.
// This keeps the shipment-level charge distinct from per-parcel static
// prices instead of overloading a single price field.
type PriceAllocation struct {
	// ShipmentTotal is the single charge for all covered parcels, GBP.
	ShipmentTotal float64
	// ServiceName is the courier service applied to the shipment.
	ServiceName string
	// CourierName is the human-readable courier name.
	CourierName string
	// CourierSlug identifies the courier that won the quote.
	CourierSlug string
	// ParcelCount is how many parcels the charge covers.
	ParcelCount int
}
