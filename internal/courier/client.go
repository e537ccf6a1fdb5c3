package courier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pinecut/quote-service/config"
	"github.com/pinecut/quote-service/internal/domain/dto"
	"github.com/pinecut/quote-service/internal/domain/model"
)

// ServiceInfo describes one courier service offered for a shipment.
type ServiceInfo struct {
	CourierName       string `json:"CourierName"`
	Name              string `json:"Name"`
	Slug              string `json:"Slug"`
	CollectionType    string `json:"CollectionType"`
	Classification    string `json:"Classification"`
	EstimatedDelivery string `json:"EstimatedDeliveryDate,omitempty"`
	CollectionCountry string `json:"CollectionCountry,omitempty"`
	DeliveryCountry   string `json:"DeliveryCountry,omitempty"`
}

// Quote is one priced shipment option. TotalPrice covers every parcel in the
// request, not a single parcel.
type Quote struct {
	Service    ServiceInfo `json:"Service"`
	TotalPrice float64     `json:"TotalPrice"`
	TotalVAT   float64     `json:"TotalVat"`
}

// quotesResponse tolerates both capitalizations the upstream API has used.
type quotesResponse struct {
	Quotes      []Quote `json:"Quotes"`
	QuotesLower []Quote `json:"quotes"`
}

func (r quotesResponse) all() []Quote {
	if len(r.Quotes) > 0 {
		return r.Quotes
	}
	return r.QuotesLower
}

// apiParcel is the wire shape for one parcel in a quote request. Dimensions
// are centimetres and weight kilograms, both rounded up so the quote is
// never for a smaller parcel than we ship.
type apiParcel struct {
	Value  float64 `json:"Value"`
	Weight float64 `json:"Weight"`
	Length float64 `json:"Length"`
	Width  float64 `json:"Width"`
	Height float64 `json:"Height"`
}

type apiAddress struct {
	Country  string `json:"Country"`
	Property string `json:"Property,omitempty"`
	Postcode string `json:"Postcode"`
	Town     string `json:"Town,omitempty"`
}

type quotesRequest struct {
	CollectionAddress apiAddress  `json:"CollectionAddress"`
	DeliveryAddress   apiAddress  `json:"DeliveryAddress"`
	Parcels           []apiParcel `json:"Parcels"`
}

// insuredValue is the declared parcel value sent with every quote request.
const insuredValue = 100

// Client calls the courier-quote API. It is safe for concurrent use; the
// access token is shared and refreshed on demand.
type Client struct {
	cfg        config.CourierConfig
	httpClient *http.Client
	tokens     tokenCache
}

// NewClient builds a Client from the courier section of the configuration.
func NewClient(cfg config.CourierConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// GetQuotes requests live prices for the given parcels as a single shipment.
// Every returned quote prices the whole shipment.
func (c *Client) GetQuotes(ctx context.Context, parcels []*model.Parcel, destination dto.Destination) ([]Quote, error) {
	if len(parcels) == 0 {
		return nil, fmt.Errorf("no parcels to quote")
	}

	token, err := c.getAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	reqBody := quotesRequest{
		CollectionAddress: apiAddress{
			Country:  c.cfg.CollectionCountry,
			Postcode: c.cfg.CollectionPostcode,
			Town:     c.cfg.CollectionTown,
		},
		DeliveryAddress: apiAddress{
			Country:  destination.Country,
			Postcode: destination.PostalCode,
			Town:     destination.City,
		},
		Parcels: toAPIParcels(parcels),
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal quote request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/api/quotes", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build quote request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request quotes: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote endpoint returned status %d", resp.StatusCode)
	}

	var qr quotesResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return nil, fmt.Errorf("decode quote response: %w", err)
	}

	quotes := qr.all()
	log.Debug().
		Int("parcel_count", len(parcels)).
		Int("quote_count", len(quotes)).
		Dur("duration", time.Since(start)).
		Str("destination", destination.Country).
		Msg("Courier quotes received")

	if len(quotes) == 0 {
		return nil, fmt.Errorf("quote endpoint returned no quotes")
	}
	return quotes, nil
}

// toAPIParcels converts internal parcels (millimetres, exact kilograms) to
// the API shape (whole centimetres and kilograms, rounded up).
func toAPIParcels(parcels []*model.Parcel) []apiParcel {
	out := make([]apiParcel, 0, len(parcels))
	for _, p := range parcels {
		out = append(out, apiParcel{
			Value:  insuredValue,
			Weight: math.Ceil(p.WeightKG),
			Length: math.Ceil(float64(p.LengthMM) / 10),
			Width:  math.Ceil(float64(p.WidthMM) / 10),
			Height: math.Ceil(float64(p.HeightMM) / 10),
		})
	}
	return out
}
