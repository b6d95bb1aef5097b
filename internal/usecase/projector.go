package usecase

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"CryptoNova/internal/domain/models"
	"CryptoNova/internal/services/signals"
)

// Projector extends an ensemble result into a day-by-day horizon. Each day
// applies a slow sine cycle, bounded noise and a slight upward drift to the
// blended prediction, clamped to 80% of the current price.
type Projector struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewProjector creates a Projector seeded from the current time.
func NewProjector() *Projector {
	return &Projector{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// NewProjectorWithSource creates a deterministic Projector for tests.
func NewProjectorWithSource(src rand.Source, now func() time.Time) *Projector {
	return &Projector{rng: rand.New(src), now: now}
}

// Project returns exactly horizon daily points starting tomorrow. The base
// is the mean of present signal predictions, or the current price when all
// signals failed.
func (p *Projector) Project(current float64, preds map[string]*models.SignalPrediction, horizon int) []models.FuturePoint {
	base := signals.Blend(preds, current)
	floor := current * 0.8

	p.mu.Lock()
	defer p.mu.Unlock()

	start := p.now()
	out := make([]models.FuturePoint, 0, horizon)
	for i := 1; i <= horizon; i++ {
		cycle := math.Sin(float64(i)*0.1) * 0.02
		noise := (p.rng.Float64() - 0.5) * 0.015
		price := base * (1 + cycle + noise) * (1 + float64(i)*0.001)
		if price < floor {
			price = floor
		}
		out = append(out, models.FuturePoint{
			Date:           start.AddDate(0, 0, i).Format("2006-01-02"),
			PredictedPrice: price,
			Confidence:     85 + (p.rng.Float64()-0.5)*10,
		})
	}
	return out
}
