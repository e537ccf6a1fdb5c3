// Package metrics provides Prometheus metrics collection for the quote service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// QuotesTotal tracks generated quotes by pricing source.
	QuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotes_total",
			Help: "Total number of generated quotes",
		},
		[]string{"source"},
	)

	// QuoteDuration tracks end-to-end quote generation duration.
	QuoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quote_duration_seconds",
			Help:    "Quote generation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
	)

	// ParcelsPerShipment tracks how many parcels each shipment packs into.
	ParcelsPerShipment = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "parcels_per_shipment",
			Help:    "Number of parcels per packed shipment",
			Buckets: []float64{1, 2, 3, 4, 5, 7, 10, 15, 20},
		},
	)

	// LiveQuoteOutcomes tracks live courier quote attempts by outcome.
	LiveQuoteOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "live_quote_outcomes_total",
			Help: "Total live courier quote attempts by outcome",
		},
		[]string{"outcome"},
	)

	// BandConfigReloads tracks pricing band configuration loads.
	BandConfigReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "band_config_reloads_total",
			Help: "Total pricing band configuration loads",
		},
		[]string{"result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordQuote records metrics for one generated quote.
func RecordQuote(source string, parcelCount int, duration time.Duration) {
	QuotesTotal.WithLabelValues(source).Inc()
	QuoteDuration.Observe(duration.Seconds())
	ParcelsPerShipment.Observe(float64(parcelCount))
}

// RecordLiveQuoteOutcome records one live quote attempt.
func RecordLiveQuoteOutcome(outcome string) {
	LiveQuoteOutcomes.WithLabelValues(outcome).Inc()
}

// RecordBandConfigReload records a pricing band configuration load.
func RecordBandConfigReload(result string) {
	BandConfigReloads.WithLabelValues(result).Inc()
}
