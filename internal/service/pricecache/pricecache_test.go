package pricecache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"CryptoNova/internal/domain/models"
	"CryptoNova/pkg/cache"
)

func TestSeriesFetchesOncePerTTL(t *testing.T) {
	store := New(cache.NewMemoryCache())
	calls := 0
	fetch := func(context.Context) (models.PriceSeries, error) {
		calls++
		return models.PriceSeries{{Timestamp: time.Now(), Price: 100}}, nil
	}

	series, hit, err := store.Series(context.Background(), "k", time.Minute, fetch)
	require.NoError(t, err)
	require.False(t, hit)
	require.Len(t, series, 1)
	require.Equal(t, 1, calls)

	series, hit, err = store.Series(context.Background(), "k", time.Minute, fetch)
	require.NoError(t, err)
	require.True(t, hit)
	require.Len(t, series, 1)
	require.Equal(t, 1, calls)
}

func TestSeriesExpiry(t *testing.T) {
	store := New(cache.NewMemoryCache())
	calls := 0
	fetch := func(context.Context) (models.PriceSeries, error) {
		calls++
		return models.PriceSeries{{Price: float64(calls)}}, nil
	}

	_, _, err := store.Series(context.Background(), "k", 10*time.Millisecond, fetch)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	series, hit, err := store.Series(context.Background(), "k", time.Minute, fetch)
	require.NoError(t, err)
	require.False(t, hit)
	require.Equal(t, 2, calls)
	require.Equal(t, 2.0, series.Last())
}

func TestSeriesErrorsNotCached(t *testing.T) {
	store := New(cache.NewMemoryCache())
	boom := errors.New("boom")
	calls := 0
	fetch := func(context.Context) (models.PriceSeries, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return models.PriceSeries{{Price: 1}}, nil
	}

	_, _, err := store.Series(context.Background(), "k", time.Minute, fetch)
	require.ErrorIs(t, err, boom)

	_, hit, err := store.Series(context.Background(), "k", time.Minute, fetch)
	require.NoError(t, err)
	require.False(t, hit)
	require.Equal(t, 2, calls)
}

func TestSpotRoundTrip(t *testing.T) {
	store := New(cache.NewMemoryCache())
	calls := 0
	fetch := func(context.Context) (float64, error) {
		calls++
		return 42.5, nil
	}

	price, hit, err := store.Spot(context.Background(), "spot:x", time.Minute, fetch)
	require.NoError(t, err)
	require.False(t, hit)
	require.Equal(t, 42.5, price)

	price, hit, err = store.Spot(context.Background(), "spot:x", time.Minute, fetch)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, 42.5, price)
	require.Equal(t, 1, calls)
}
