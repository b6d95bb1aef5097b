package usecase

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"CryptoNova/internal/domain/models"
	"CryptoNova/internal/domain/repository"
	"CryptoNova/internal/service/pricecache"
	"CryptoNova/internal/service/ratelimit"
	"CryptoNova/internal/services/market"
	"CryptoNova/internal/services/signals"
	"CryptoNova/pkg/cache"
	applogger "CryptoNova/pkg/logger"
)

type stubSource struct {
	series models.PriceSeries
	err    error
	spot   float64
}

func (s *stubSource) Series(context.Context, string, int) (models.PriceSeries, error) {
	return s.series, s.err
}

func (s *stubSource) SpotPrice(context.Context, string) (float64, error) {
	return s.spot, s.err
}

func testSeries(n int) models.PriceSeries {
	series := make(models.PriceSeries, n)
	for i := range series {
		series[i] = models.PricePoint{
			Timestamp: fixedNow().AddDate(0, 0, i-n+1),
			Price:     100 + float64(i),
		}
	}
	return series
}

func newTestForecaster(source repository.MarketSource) *Forecaster {
	fetcher := market.NewFetcher(market.FetcherConfig{
		Source:    source,
		Cache:     pricecache.New(cache.NewMemoryCache()),
		Limiter:   ratelimit.New(0),
		Synth:     market.NewSynthesizerWithSource(rand.NewSource(1), fixedNow),
		Metrics:   repository.NopMetrics{},
		Logger:    applogger.Nop(),
		SeriesTTL: time.Minute,
		SpotTTL:   time.Minute,
	})
	ensemble := signals.DefaultEnsemble(applogger.Nop(), rand.New(rand.NewSource(2)))
	return NewForecaster(ForecasterConfig{
		Fetcher:     fetcher,
		Ensemble:    ensemble,
		Projector:   testProjector(3),
		Metrics:     repository.NopMetrics{},
		Logger:      applogger.Nop(),
		HistoryDays: 30,
		Lookback:    10,
	})
}

func TestForecastFromUpstreamData(t *testing.T) {
	f := newTestForecaster(&stubSource{series: testSeries(30)})

	forecast, err := f.Forecast(context.Background(), "btc", 7)
	require.NoError(t, err)

	require.Equal(t, "BTC", forecast.Symbol)
	require.Equal(t, 129.0, forecast.CurrentPrice)
	require.Len(t, forecast.Future, 7)
	require.Len(t, forecast.Predictions, 3)

	for name, pred := range forecast.Predictions {
		require.NotNil(t, pred, name)
		require.Equal(t, name, pred.Signal)
		require.Greater(t, pred.Price, 0.0)
		require.Greater(t, pred.Confidence, 0.0)
	}

	require.GreaterOrEqual(t, forecast.Predictions[signals.MomentumName].Price, 129*0.8)
	require.GreaterOrEqual(t, forecast.Predictions[signals.RulesName].Price, 129*0.85)
	require.GreaterOrEqual(t, forecast.Predictions[signals.TrendName].Price, 129*0.9)
}

func TestForecastSurvivesUpstreamOutage(t *testing.T) {
	f := newTestForecaster(&stubSource{err: models.ErrUpstreamUnavailable})

	forecast, err := f.Forecast(context.Background(), "eth", 5)
	require.NoError(t, err)
	require.Equal(t, "ETH", forecast.Symbol)
	require.Greater(t, forecast.CurrentPrice, 0.0)
	require.Len(t, forecast.Future, 5)
}

func TestForecastUnknownAssetDefaultsAnchor(t *testing.T) {
	f := newTestForecaster(&stubSource{err: models.ErrUpstreamUnavailable})

	forecast, err := f.Forecast(context.Background(), "unknowncoin", 3)
	require.NoError(t, err)
	require.Equal(t, "UNKNOWNCOIN", forecast.Symbol)
	require.Len(t, forecast.Future, 3)
	// Synthetic history for an uncatalogued asset anchors on the default.
	require.InDelta(t, 65000, forecast.CurrentPrice, 65000*0.1)
}

func TestForecastInsufficientHistory(t *testing.T) {
	// 25 points yield 5 indicator rows, below the 10-row lookback.
	f := newTestForecaster(&stubSource{series: testSeries(25)})

	_, err := f.Forecast(context.Background(), "btc", 7)
	require.ErrorIs(t, err, models.ErrInsufficientHistory)
}

func TestForecastSpotPassthrough(t *testing.T) {
	f := newTestForecaster(&stubSource{spot: 3.14})

	price, err := f.Spot(context.Background(), "dogecoin")
	require.NoError(t, err)
	require.Equal(t, 3.14, price)
}

func TestForecastSignalsExposed(t *testing.T) {
	f := newTestForecaster(&stubSource{series: testSeries(30)})
	sigs := f.Signals()
	require.Len(t, sigs, 3)
}
