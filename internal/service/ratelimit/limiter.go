package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter enforces a minimum interval between requests per key. A call
// either proceeds immediately or sleeps until the interval since the last
// stamped request has elapsed.
type Limiter struct {
	mu       sync.Mutex
	interval time.Duration
	last     map[string]time.Time
	now      func() time.Time
}

// New creates a limiter with the given minimum interval between calls
// sharing the same key.
func New(interval time.Duration) *Limiter {
	return &Limiter{
		interval: interval,
		last:     make(map[string]time.Time),
		now:      time.Now,
	}
}

// Wait blocks until a request for key is allowed, then stamps the slot.
// Returns how long it waited. Respects ctx cancellation while sleeping.
func (l *Limiter) Wait(ctx context.Context, key string) (time.Duration, error) {
	if l.interval <= 0 {
		return 0, ctx.Err()
	}

	l.mu.Lock()
	now := l.now()
	next := l.last[key].Add(l.interval)
	if !now.Before(next) {
		l.last[key] = now
		l.mu.Unlock()
		return 0, nil
	}
	wait := next.Sub(now)
	l.mu.Unlock()

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-timer.C:
	}

	l.mu.Lock()
	l.last[key] = l.now()
	l.mu.Unlock()

	return wait, nil
}

// Interval returns the configured minimum interval.
func (l *Limiter) Interval() time.Duration {
	return l.interval
}
