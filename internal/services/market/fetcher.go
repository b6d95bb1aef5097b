package market

import (
	"context"
	"fmt"
	"time"

	"CryptoNova/internal/domain/models"
	"CryptoNova/internal/domain/repository"
	"CryptoNova/internal/service/pricecache"
	"CryptoNova/internal/service/ratelimit"
	applogger "CryptoNova/pkg/logger"
)

// Fetcher is the single entry point for price data. It layers a read-through
// cache and a rate limiter over the upstream source, and degrades to
// synthetic history rather than failing: FetchSeries never returns an error.
type Fetcher struct {
	source    repository.MarketSource
	cache     *pricecache.Store
	limiter   *ratelimit.Limiter
	synth     *Synthesizer
	metrics   repository.Metrics
	log       *applogger.Logger
	seriesTTL time.Duration
	spotTTL   time.Duration
}

// FetcherConfig wires a Fetcher.
type FetcherConfig struct {
	Source    repository.MarketSource
	Cache     *pricecache.Store
	Limiter   *ratelimit.Limiter
	Synth     *Synthesizer
	Metrics   repository.Metrics
	Logger    *applogger.Logger
	SeriesTTL time.Duration
	SpotTTL   time.Duration
}

// NewFetcher creates a Fetcher.
func NewFetcher(cfg FetcherConfig) *Fetcher {
	return &Fetcher{
		source:    cfg.Source,
		cache:     cfg.Cache,
		limiter:   cfg.Limiter,
		synth:     cfg.Synth,
		metrics:   cfg.Metrics,
		log:       cfg.Logger,
		seriesTTL: cfg.SeriesTTL,
		spotTTL:   cfg.SpotTTL,
	}
}

// FetchSeries returns days of daily history for symbol. On upstream failure
// it substitutes synthetic history; the bool reports whether the data is
// real. Synthetic series are never cached.
func (f *Fetcher) FetchSeries(ctx context.Context, symbol string, days int) (models.PriceSeries, bool, error) {
	id := CanonicalID(symbol)
	key := fmt.Sprintf("series:%s:%d", id, days)

	series, hit, err := f.cache.Series(ctx, key, f.seriesTTL, func(ctx context.Context) (models.PriceSeries, error) {
		// Throttled per asset and purpose, so neither other assets nor
		// spot fetches for the same asset share this slot.
		waited, err := f.limiter.Wait(ctx, "series:"+id)
		if err != nil {
			return nil, err
		}
		f.metrics.RecordRateLimitWait(waited.Seconds())
		return f.source.Series(ctx, id, days)
	})
	f.metrics.RecordCache("series", hit)
	if err == nil {
		return series, true, nil
	}
	if ctx.Err() != nil {
		return nil, false, ctx.Err()
	}

	f.log.Warn("upstream series fetch failed, using synthetic history",
		applogger.String("symbol", symbol),
		applogger.String("id", id),
		applogger.Error(err),
	)
	f.metrics.RecordUpstreamError("market_chart")
	f.metrics.RecordFallback(symbol)

	return f.synth.Generate(id, days), false, nil
}

// FetchSpot returns the current price for symbol. Pinned symbols resolve
// from the override table without touching cache or upstream; otherwise the
// cached upstream quote is used, falling back to the reference price.
func (f *Fetcher) FetchSpot(ctx context.Context, symbol string) (float64, error) {
	if price, ok := SpotOverride(symbol); ok {
		f.metrics.RecordLastPrice(symbol, price)
		return price, nil
	}

	id := CanonicalID(symbol)
	key := "spot:" + id

	price, hit, err := f.cache.Spot(ctx, key, f.spotTTL, func(ctx context.Context) (float64, error) {
		waited, err := f.limiter.Wait(ctx, "spot:"+id)
		if err != nil {
			return 0, err
		}
		f.metrics.RecordRateLimitWait(waited.Seconds())
		return f.source.SpotPrice(ctx, id)
	})
	f.metrics.RecordCache("spot", hit)
	if err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		f.log.Warn("upstream spot fetch failed, using reference price",
			applogger.String("symbol", symbol),
			applogger.Error(err),
		)
		f.metrics.RecordUpstreamError("simple_price")
		price = ReferencePrice(id)
	}

	f.metrics.RecordLastPrice(symbol, price)
	return price, nil
}
