package usecase

import (
	"context"
	"strings"
	"time"

	"CryptoNova/internal/domain/models"
	"CryptoNova/internal/domain/repository"
	"CryptoNova/internal/services/features"
	"CryptoNova/internal/services/indicators"
	"CryptoNova/internal/services/market"
	"CryptoNova/internal/services/signals"
	applogger "CryptoNova/pkg/logger"
)

// Forecaster runs the full pipeline: history → indicators → latest window →
// ensemble → projection. Upstream outages degrade to synthetic data inside
// the fetcher, so the only domain error a caller sees is
// models.ErrInsufficientHistory.
type Forecaster struct {
	fetcher     *market.Fetcher
	ensemble    *signals.Ensemble
	projector   *Projector
	metrics     repository.Metrics
	log         *applogger.Logger
	historyDays int
	lookback    int
}

// ForecasterConfig wires a Forecaster.
type ForecasterConfig struct {
	Fetcher     *market.Fetcher
	Ensemble    *signals.Ensemble
	Projector   *Projector
	Metrics     repository.Metrics
	Logger      *applogger.Logger
	HistoryDays int
	Lookback    int
}

// NewForecaster creates a Forecaster.
func NewForecaster(cfg ForecasterConfig) *Forecaster {
	return &Forecaster{
		fetcher:     cfg.Fetcher,
		ensemble:    cfg.Ensemble,
		projector:   cfg.Projector,
		metrics:     cfg.Metrics,
		log:         cfg.Logger,
		historyDays: cfg.HistoryDays,
		lookback:    cfg.Lookback,
	}
}

// Forecast produces the full prediction set for a symbol across the given
// horizon in days.
func (f *Forecaster) Forecast(ctx context.Context, symbol string, horizon int) (*models.Forecast, error) {
	start := time.Now()
	display := strings.ToUpper(strings.TrimSpace(symbol))

	series, real, err := f.fetcher.FetchSeries(ctx, symbol, f.historyDays)
	if err != nil {
		return nil, err
	}

	frame := indicators.Compute(series)
	window, err := features.LatestWindow(frame, f.lookback)
	if err != nil {
		return nil, err
	}

	current := window.Latest().Price
	preds := f.ensemble.Evaluate(window)
	future := f.projector.Project(current, preds, horizon)

	f.metrics.RecordForecast(display)
	f.metrics.RecordLatency("forecast", time.Since(start).Seconds())
	f.log.Info("forecast produced",
		applogger.String("symbol", display),
		applogger.Int("horizon", horizon),
		applogger.Bool("real_data", real),
		applogger.Float64("current_price", current),
	)

	return &models.Forecast{
		Symbol:       display,
		CurrentPrice: current,
		Predictions:  preds,
		Future:       future,
		Timestamp:    time.Now(),
	}, nil
}

// Spot returns the current price for a symbol.
func (f *Forecaster) Spot(ctx context.Context, symbol string) (float64, error) {
	return f.fetcher.FetchSpot(ctx, symbol)
}

// Signals exposes the configured signals for status reporting.
func (f *Forecaster) Signals() []signals.Signal {
	return f.ensemble.Signals()
}
