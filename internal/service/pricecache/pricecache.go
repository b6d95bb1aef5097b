package pricecache

import (
	"context"
	"time"

	"CryptoNova/internal/domain/models"
	"CryptoNova/pkg/cache"
)

// Store is a read-through cache for market data. Values are stored through
// the shared cache backend; fetch errors are returned to the caller and
// never cached.
type Store struct {
	backend cache.Service
}

// New creates a Store over the given cache backend.
func New(backend cache.Service) *Store {
	return &Store{backend: backend}
}

// Series returns the cached series for key, or runs fetch and caches the
// result for ttl. The bool reports whether the value came from cache.
func (s *Store) Series(ctx context.Context, key string, ttl time.Duration, fetch func(context.Context) (models.PriceSeries, error)) (models.PriceSeries, bool, error) {
	var cached models.PriceSeries
	if err := s.backend.Get(ctx, key, &cached); err == nil {
		return cached, true, nil
	}
	// Any Get failure counts as a miss so a degraded backend never blocks
	// fetching.

	series, err := fetch(ctx)
	if err != nil {
		return nil, false, err
	}
	_ = s.backend.Set(ctx, key, series, ttl)
	return series, false, nil
}

// Spot returns the cached spot price for key, or runs fetch and caches the
// result for ttl.
func (s *Store) Spot(ctx context.Context, key string, ttl time.Duration, fetch func(context.Context) (float64, error)) (float64, bool, error) {
	var cached float64
	err := s.backend.Get(ctx, key, &cached)
	if err == nil {
		return cached, true, nil
	}

	price, err := fetch(ctx)
	if err != nil {
		return 0, false, err
	}
	_ = s.backend.Set(ctx, key, price, ttl)
	return price, false, nil
}
