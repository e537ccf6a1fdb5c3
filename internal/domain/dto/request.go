// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import (
	"github.com/pinecut/quote-service/internal/domain/model"
)

// Destination is the delivery address for a quote request.
//
// @Description Delivery destination for the shipment
type Destination struct {
	// Country is the ISO country code, e.g. "GB".
	Country string `json:"country" example:"GB"`
	// PostalCode is the delivery postcode.
	PostalCode string `json:"postalCode" example:"SW1A 1AA"`
	// City is optional.
	City string `json:"city,omitempty" example:"London"`
}

// QuotePreferences carries optional client hints for quote selection.
type QuotePreferences struct {
	// Speed is one of "cheapest", "fastest" or "balanced".
	Speed string `json:"speed,omitempty" example:"cheapest"`
	// AllowSplit permits splitting the order across parcels.
	AllowSplit bool `json:"allowSplit,omitempty"`
}

// QuoteRequest is the JSON body for the instant quote endpoint.
//
// @Description Request to compute a shipping quote for a set of cut-to-size boards
type QuoteRequest struct {
	// CartID is the optional storefront cart identifier.
	CartID string `json:"cartId,omitempty" example:"cart_8841"`
	// Destination is the delivery address.
	Destination Destination `json:"destination"`
	// Items are the order lines to pack and price.
	Items []model.Item `json:"items"`
	// Preferences are optional client hints.
	Preferences *QuotePreferences `json:"preferences,omitempty"`
} // @name QuoteRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrNoItems is returned when the request has an empty item list.
	ErrNoItems = &ValidationError{Field: "items", Message: "at least one item is required"}
	// ErrNoDestination is returned when the destination country is missing.
	ErrNoDestination = &ValidationError{Field: "destination", Message: "destination country is required"}
	// ErrInvalidDimensions is returned when an item has non-positive dimensions.
	ErrInvalidDimensions = &ValidationError{Field: "items", Message: "item dimensions must be positive"}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *QuoteRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrNoItems
	}
	if r.Destination.Country == "" {
		return ErrNoDestination
	}
	for _, item := range r.Items {
		if item.LengthMM <= 0 || item.WidthMM <= 0 || item.ThicknessMM <= 0 {
			return ErrInvalidDimensions
		}
	}
	return nil
}

// UpdateBandsRequest is the JSON body for replacing the active pricing ladder.
type UpdateBandsRequest struct {
	// Bands is the ordered ladder, ascending ceilings, last band unbounded.
	Bands []model.PricingBand `json:"bands" binding:"required,min=1"`
	// CreatedBy is the identifier of who created this configuration.
	CreatedBy string `json:"created_by,omitempty"`
} // @name UpdateBandsRequest
