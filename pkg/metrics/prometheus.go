package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder exposes Prometheus instruments for the forecasting pipeline.
type Recorder struct {
	forecastsTotal   *prometheus.CounterVec
	cacheOps         *prometheus.CounterVec
	upstreamErrors   *prometheus.CounterVec
	fallbacksTotal   *prometheus.CounterVec
	rateLimitWait    prometheus.Histogram
	lastPrice        *prometheus.GaugeVec
	operationLatency *prometheus.HistogramVec
}

// NewRecorder creates and registers all pipeline metrics on the default
// registry. Construct it once per process.
func NewRecorder() *Recorder {
	return &Recorder{
		forecastsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cryptonova_forecasts_total",
			Help: "Total number of forecasts produced",
		}, []string{"symbol"}),
		cacheOps: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cryptonova_cache_requests_total",
			Help: "Cache lookups partitioned by cache name and outcome",
		}, []string{"cache", "outcome"}),
		upstreamErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cryptonova_upstream_errors_total",
			Help: "Upstream market data request failures by endpoint",
		}, []string{"endpoint"}),
		fallbacksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cryptonova_synthetic_fallbacks_total",
			Help: "Times synthetic history replaced upstream data",
		}, []string{"symbol"}),
		rateLimitWait: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "cryptonova_rate_limit_wait_seconds",
			Help:    "Time spent waiting on the upstream rate limiter",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 1.5, 2, 5},
		}),
		lastPrice: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cryptonova_last_price",
			Help: "Most recent spot price observed per symbol",
		}, []string{"symbol"}),
		operationLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cryptonova_operation_duration_seconds",
			Help:    "Latency of pipeline operations",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

// RecordForecast counts a completed forecast for a symbol.
func (r *Recorder) RecordForecast(symbol string) {
	r.forecastsTotal.WithLabelValues(symbol).Inc()
}

// RecordCache counts a cache lookup outcome.
func (r *Recorder) RecordCache(cache string, hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	r.cacheOps.WithLabelValues(cache, outcome).Inc()
}

// RecordUpstreamError counts an upstream request failure.
func (r *Recorder) RecordUpstreamError(endpoint string) {
	r.upstreamErrors.WithLabelValues(endpoint).Inc()
}

// RecordFallback counts a synthetic data substitution.
func (r *Recorder) RecordFallback(symbol string) {
	r.fallbacksTotal.WithLabelValues(symbol).Inc()
}

// RecordRateLimitWait observes time spent blocked on the limiter.
func (r *Recorder) RecordRateLimitWait(seconds float64) {
	r.rateLimitWait.Observe(seconds)
}

// RecordLastPrice updates the latest observed spot price.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordLatency observes the duration of a named operation.
func (r *Recorder) RecordLatency(operation string, seconds float64) {
	r.operationLatency.WithLabelValues(operation).Observe(seconds)
}
