package signals

import (
	"fmt"
	"math/rand"
	"sync"

	"CryptoNova/internal/services/features"
)

// Momentum blends a moving-average momentum term with an RSI
// mean-reversion term, plus volatility-scaled noise.
type Momentum struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMomentum creates the momentum signal with the given noise source.
func NewMomentum(rng *rand.Rand) *Momentum {
	return &Momentum{rng: rng}
}

func (m *Momentum) Name() string        { return MomentumName }
func (m *Momentum) Confidence() float64 { return MomentumConfidence }

// Predict applies factor = 1 + 0.5*momentum + 0.3*rsi_reversion +
// noise*volatility to the latest price, floored at 80% of it.
func (m *Momentum) Predict(w features.Window) (float64, error) {
	latest := w.Latest()
	if latest.MA21 == 0 {
		return 0, fmt.Errorf("momentum: zero long moving average")
	}

	momentum := (latest.MA7 - latest.MA21) / latest.MA21
	reversion := (50 - latest.RSI) / 100

	m.mu.Lock()
	noise := m.rng.Float64() - 0.5
	m.mu.Unlock()

	factor := 1 + 0.5*momentum + 0.3*reversion + noise*latest.Volatility
	price := latest.Price * factor
	if floor := latest.Price * 0.8; price < floor {
		price = floor
	}
	return price, nil
}
