// Package config provides configuration management for the quote service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Packing  PackingConfig
	Pricing  PricingConfig
	Courier  CourierConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
	// HMACSecret enables request signature verification when non-empty.
	HMACSecret string
	// HMACMaxSkew is the allowed timestamp drift for signed requests.
	HMACMaxSkew time.Duration
}

// PackingConfig holds parcel packing parameters.
type PackingConfig struct {
	// Strategy selects the packing heuristic: "weight-balanced" or
	// "girth-first".
	Strategy string
	// PaddingMM is the clearance added around each board footprint for
	// packaging material.
	PaddingMM float64
	// DensityKGM3 is the timber density used to derive missing weights.
	DensityKGM3 float64
	// MaxWeightKG is the standard per-parcel weight cap.
	MaxWeightKG float64
	// OversizeMaxWeightKG is the oversized-carrier weight cap and the
	// hard shipping ceiling.
	OversizeMaxWeightKG float64
	// GirthCapMM is the small-carrier girth cap.
	GirthCapMM float64
}

// PricingConfig holds static pricing and discount parameters.
type PricingConfig struct {
	// BandsFile is an optional YAML file with the static price ladder.
	BandsFile string
	// DiscountRate is the multi-package discount fraction.
	DiscountRate float64
	// DiscountMinParcels is the minimum same-family parcel count for the
	// discount to apply.
	DiscountMinParcels int
}

// CourierConfig holds the external courier-quote API configuration.
type CourierConfig struct {
	Enabled      bool
	BaseURL      string
	AuthURL      string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
	// TokenExpirySafety is subtracted from the token lifetime so a token
	// is refreshed before it actually expires.
	TokenExpirySafety time.Duration
	// AllowedCouriers is the explicit courier slug allow-list.
	AllowedCouriers []string
	// PreferredCouriers is the selection order among allowed couriers.
	PreferredCouriers []string
	// PreferredServiceSlug is tried first for the top preferred courier.
	PreferredServiceSlug string
	// Collection address of the workshop the parcels ship from.
	CollectionTown     string
	CollectionPostcode string
	CollectionCountry  string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
			HMACSecret:  getEnv("HMAC_SECRET", ""),
			HMACMaxSkew: getEnvDuration("HMAC_MAX_SKEW", 5*time.Minute),
		},
		Packing: PackingConfig{
			Strategy:            getEnv("PACKING_STRATEGY", "weight-balanced"),
			PaddingMM:           getEnvFloat("PADDING_MM", 30),
			DensityKGM3:         getEnvFloat("DENSITY_KG_M3", 520),
			MaxWeightKG:         getEnvFloat("MAX_WEIGHT_KG", 30),
			OversizeMaxWeightKG: getEnvFloat("OVERSIZE_MAX_WEIGHT_KG", 45),
			GirthCapMM:          getEnvFloat("GIRTH_CAP_MM", 3000),
		},
		Pricing: PricingConfig{
			BandsFile:          getEnv("PRICING_BANDS_FILE", ""),
			DiscountRate:       getEnvFloat("DISCOUNT_RATE", 0.10),
			DiscountMinParcels: getEnvInt("DISCOUNT_MIN_PARCELS", 2),
		},
		Courier: CourierConfig{
			Enabled:              getEnvBool("COURIER_ENABLED", false),
			BaseURL:              getEnv("COURIER_API_URL", "https://www.parcel2go.com"),
			AuthURL:              getEnv("COURIER_AUTH_URL", "https://www.parcel2go.com"),
			ClientID:             getEnv("COURIER_CLIENT_ID", ""),
			ClientSecret:         getEnv("COURIER_CLIENT_SECRET", ""),
			Timeout:              getEnvDuration("COURIER_TIMEOUT", 10*time.Second),
			TokenExpirySafety:    getEnvDuration("COURIER_TOKEN_SAFETY", 5*time.Minute),
			AllowedCouriers:      parseStringSlice(getEnv("COURIER_ALLOWED", "ups,parcelforce,dhl")),
			PreferredCouriers:    parseStringSlice(getEnv("COURIER_PREFERRED", "ups,parcelforce")),
			PreferredServiceSlug: getEnv("COURIER_PREFERRED_SERVICE", "ups-dap-uk-standard"),
			CollectionTown:       getEnv("COLLECTION_TOWN", "High Wycombe"),
			CollectionPostcode:   getEnv("COLLECTION_POSTCODE", "HP12 3RL"),
			CollectionCountry:    getEnv("COLLECTION_COUNTRY", "GB"),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "quote_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseStringSlice(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			result = append(result, strings.ToLower(v))
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
