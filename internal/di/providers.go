package di

import (
	"fmt"
	"math/rand"
	"time"

	"CryptoNova/internal/domain/repository"
	"CryptoNova/internal/handler/api"
	"CryptoNova/internal/service/coingecko"
	"CryptoNova/internal/service/pricecache"
	"CryptoNova/internal/service/ratelimit"
	"CryptoNova/internal/services/market"
	"CryptoNova/internal/services/signals"
	"CryptoNova/internal/usecase"
	"CryptoNova/pkg/cache"
	"CryptoNova/pkg/config"
	xhttp "CryptoNova/pkg/http"
	applogger "CryptoNova/pkg/logger"
	"CryptoNova/pkg/metrics"
	"CryptoNova/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.NewRecorder()
}

// ProvideCacheService creates the cache backend selected by configuration.
func ProvideCacheService(cfg *config.Config) (cache.Service, error) {
	switch cfg.Cache.Backend {
	case "redis":
		return cache.NewRedisCache(
			cache.WithRedisAddr(cfg.Cache.Redis.Host, cfg.Cache.Redis.Port),
			cache.WithRedisAuth(cfg.Cache.Redis.Password, cfg.Cache.Redis.DB),
		)
	case "memory":
		return cache.NewMemoryCache(
			cache.WithMemoryMaxEntries(cfg.Cache.MaxEntries),
		), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// ProvideMarketSource creates the CoinGecko client.
func ProvideMarketSource(cfg *config.Config) repository.MarketSource {
	client := xhttp.NewClient(xhttp.WithTimeout(cfg.Market.RequestTimeout))
	return coingecko.New(client, cfg.Market.BaseURL, cfg.Market.Currency)
}

// ProvideLimiter creates the upstream rate limiter.
func ProvideLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(cfg.Market.RateLimitDelay)
}

// ProvidePriceCache creates the read-through price cache.
func ProvidePriceCache(backend cache.Service) *pricecache.Store {
	return pricecache.New(backend)
}

// ProvideFetcher creates the market data fetcher with synthetic fallback.
func ProvideFetcher(
	cfg *config.Config,
	source repository.MarketSource,
	store *pricecache.Store,
	limiter *ratelimit.Limiter,
	m repository.Metrics,
	l *applogger.Logger,
) *market.Fetcher {
	return market.NewFetcher(market.FetcherConfig{
		Source:    source,
		Cache:     store,
		Limiter:   limiter,
		Synth:     market.NewSynthesizer(),
		Metrics:   m,
		Logger:    l,
		SeriesTTL: cfg.Market.SeriesCacheTTL,
		SpotTTL:   cfg.Market.SpotCacheTTL,
	})
}

// ProvideEnsemble creates the standard signal ensemble.
func ProvideEnsemble(l *applogger.Logger) *signals.Ensemble {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return signals.DefaultEnsemble(l, rng)
}

// ProvideForecaster creates the forecasting pipeline.
func ProvideForecaster(
	cfg *config.Config,
	fetcher *market.Fetcher,
	ensemble *signals.Ensemble,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.Forecaster {
	return usecase.NewForecaster(usecase.ForecasterConfig{
		Fetcher:     fetcher,
		Ensemble:    ensemble,
		Projector:   usecase.NewProjector(),
		Metrics:     m,
		Logger:      l,
		HistoryDays: cfg.Market.HistoryDays,
		Lookback:    cfg.Forecast.Lookback,
	})
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(l *applogger.Logger, forecaster *usecase.Forecaster) xhttp.Handler {
	return api.NewForecastEchoHandler(l, forecaster)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	handler xhttp.Handler,
	backend cache.Service,
) *server.App {
	return server.New(cfg, l, handler, backend)
}
