package repository

import (
	"context"

	"CryptoNova/internal/domain/models"
)

// MarketSource fetches market data from an upstream provider. Implementations
// return models.ErrUpstreamUnavailable (wrapped) on any transport or decode
// failure.
type MarketSource interface {
	Series(ctx context.Context, id string, days int) (models.PriceSeries, error)
	SpotPrice(ctx context.Context, id string) (float64, error)
}

// Metrics is the subset of instrumentation the pipeline emits.
type Metrics interface {
	RecordForecast(symbol string)
	RecordCache(cache string, hit bool)
	RecordUpstreamError(endpoint string)
	RecordFallback(symbol string)
	RecordRateLimitWait(seconds float64)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(operation string, seconds float64)
}

// NopMetrics discards all observations. Useful in tests.
type NopMetrics struct{}

func (NopMetrics) RecordForecast(string)           {}
func (NopMetrics) RecordCache(string, bool)        {}
func (NopMetrics) RecordUpstreamError(string)      {}
func (NopMetrics) RecordFallback(string)           {}
func (NopMetrics) RecordRateLimitWait(float64)     {}
func (NopMetrics) RecordLastPrice(string, float64) {}
func (NopMetrics) RecordLatency(string, float64)   {}
