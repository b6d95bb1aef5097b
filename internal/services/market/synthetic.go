package market

import (
	"math/rand"
	"sync"
	"time"

	"CryptoNova/internal/domain/models"
)

// Synthesizer produces plausible daily price history when the upstream is
// unreachable. Output is anchored on the catalog's reference price for the
// coin and drifts down in the first half of the window and up in the
// second, with volatility-scaled noise.
type Synthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewSynthesizer creates a Synthesizer seeded from the current time.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// NewSynthesizerWithSource creates a deterministic Synthesizer for tests.
func NewSynthesizerWithSource(src rand.Source, now func() time.Time) *Synthesizer {
	return &Synthesizer{rng: rand.New(src), now: now}
}

// Generate returns days daily points ending today for the given coin id.
func (s *Synthesizer) Generate(id string, days int) models.PriceSeries {
	base := ReferencePrice(id)
	vol := dailyVolatility(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now().UTC()
	series := make(models.PriceSeries, 0, days)
	for i := 0; i < days; i++ {
		trend := 0.001
		if i < days/2 {
			trend = -0.001
		}
		noise := (s.rng.Float64() - 0.5) * vol
		change := trend + noise
		price := base * (1 + change*float64(days-i)/float64(days))
		if price <= 0 {
			price = base * 0.01
		}
		series = append(series, models.PricePoint{
			Timestamp: today.AddDate(0, 0, -(days - 1 - i)),
			Price:     price,
		})
	}
	return series
}
