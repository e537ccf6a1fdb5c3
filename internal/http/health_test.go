package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinecut/quote-service/internal/circuitbreaker"
)

func performReadiness(t *testing.T, handler *HealthHandler) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler.Register(router)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHealthHandler_Liveness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewHealthHandler().Register(router)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	t.Run("no dependencies registered", func(t *testing.T) {
		w, body := performReadiness(t, NewHealthHandler())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", body["status"])
		checks := body["checks"].(map[string]interface{})
		assert.Equal(t, "ok", checks["service"])
	})

	t.Run("healthy mongodb check", func(t *testing.T) {
		handler := NewHealthHandler()
		handler.RegisterChecker("mongodb", HealthCheckerFunc(func(ctx context.Context) error {
			return nil
		}))

		w, body := performReadiness(t, handler)

		assert.Equal(t, http.StatusOK, w.Code)
		checks := body["checks"].(map[string]interface{})
		assert.Equal(t, "ok", checks["mongodb"])
	})

	t.Run("failed check degrades the service", func(t *testing.T) {
		handler := NewHealthHandler()
		handler.RegisterChecker("mongodb", HealthCheckerFunc(func(ctx context.Context) error {
			return errors.New("connection refused")
		}))

		w, body := performReadiness(t, handler)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "degraded", body["status"])
		checks := body["checks"].(map[string]interface{})
		assert.Equal(t, "connection refused", checks["mongodb"])
	})

	t.Run("checker receives deadline", func(t *testing.T) {
		handler := NewHealthHandler()
		handler.RegisterChecker("mongodb", HealthCheckerFunc(func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return nil
		}))

		w, _ := performReadiness(t, handler)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("healthy circuit breaker", func(t *testing.T) {
		handler := NewHealthHandler()
		handler.RegisterCircuitBreaker("mongodb_pricing_bands", circuitbreaker.New(circuitbreaker.DefaultConfig()))

		w, body := performReadiness(t, handler)

		assert.Equal(t, http.StatusOK, w.Code)
		checks := body["checks"].(map[string]interface{})
		assert.Equal(t, "closed", checks["mongodb_pricing_bands_circuit"])
	})

	t.Run("open circuit breaker degrades the service", func(t *testing.T) {
		cfg := circuitbreaker.DefaultConfig()
		cfg.FailureThreshold = 1
		cb := circuitbreaker.New(cfg)
		_ = cb.Execute(context.Background(), func() error {
			return errors.New("mongo down")
		})

		handler := NewHealthHandler()
		handler.RegisterCircuitBreaker("mongodb_logs", cb)

		w, body := performReadiness(t, handler)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "degraded", body["status"])
		checks := body["checks"].(map[string]interface{})
		assert.Equal(t, "open", checks["mongodb_logs_circuit"])
	})
}
