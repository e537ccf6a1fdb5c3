package dto

import (
	"net/http"
	"time"

	"github.com/pinecut/quote-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// ServicePrice is one line of the quote breakdown.
//
// @Description Per-parcel service and price line
type ServicePrice struct {
	Service string  `json:"service" example:"DHL Express Medium"`
	Price   float64 `json:"price" example:"73.51"`
} // @name ServicePrice

// PackageDetail is the human-readable description of one packed parcel.
//
// @Description Itemized parcel description with dimensions in centimetres
type PackageDetail struct {
	PackageNumber int      `json:"packageNumber" example:"1"`
	Items         []string `json:"items"`
	TotalWeight   string   `json:"totalWeight" example:"27 kg"`
	Dimensions    string   `json:"dimensions" example:"96 x 39 x 14 cm"`
	Service       string   `json:"service" example:"DHL Express Medium"`
	Price         float64  `json:"price" example:"73.51"`
} // @name PackageDetail

// QuoteResponse is the JSON body returned by the instant quote endpoint.
//
// @Description Complete shipping quote with per-parcel breakdown and totals
type QuoteResponse struct {
	// Status is "done" on success, "error" on request failure.
	Status string `json:"status" example:"done"`
	// Subtotal before discount, present for multi-parcel shipments.
	Subtotal float64 `json:"subtotal,omitempty" example:"147.02"`
	// Discount applied across same-family static parcels.
	Discount float64 `json:"discount,omitempty" example:"14.70"`
	// Total payable in Currency.
	Total float64 `json:"total" example:"132.32"`
	// Currency is always GBP.
	Currency string `json:"currency" example:"GBP"`
	// Packages are the packed parcels with assigned services and prices.
	Packages []*model.Parcel `json:"packages"`
	// DetailedPackages are human-readable parcel descriptions.
	DetailedPackages []PackageDetail `json:"detailedPackages,omitempty"`
	// Breakdown lists service/price per parcel.
	Breakdown []ServicePrice `json:"breakdown"`
	// Source is "live" when any parcel used a live courier price,
	// otherwise "static".
	Source string `json:"source" example:"static"`
	// ShipmentTotal is the live shipment-level charge, 0 when static.
	ShipmentTotal float64 `json:"shipment_total,omitempty"`
	// Copy is a marketing line for the storefront widget.
	Copy string `json:"copy,omitempty"`
	// DiscountMessage explains the applied (or skipped) discount.
	DiscountMessage string `json:"discountMessage,omitempty"`
	// Error is populated when Status is "error".
	Error string `json:"error,omitempty"`
} // @name QuoteResponse

// SuccessResponse wraps successful responses for configuration endpoints.
// @Description Standardized success envelope
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time   `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"items: at least one item is required"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}
