package signals

import (
	"math/rand"

	"CryptoNova/internal/domain/models"
	"CryptoNova/internal/services/features"
	applogger "CryptoNova/pkg/logger"
)

// Ensemble evaluates every configured signal independently. A signal that
// errors or panics contributes a nil entry instead of failing the forecast.
type Ensemble struct {
	signals []Signal
	log     *applogger.Logger
}

// NewEnsemble creates an ensemble over the given signals.
func NewEnsemble(log *applogger.Logger, sigs ...Signal) *Ensemble {
	return &Ensemble{signals: sigs, log: log}
}

// DefaultEnsemble wires the standard momentum, rules and trend signals.
func DefaultEnsemble(log *applogger.Logger, rng *rand.Rand) *Ensemble {
	return NewEnsemble(log, NewMomentum(rng), NewRules(), NewTrend())
}

// Evaluate runs every signal on the window. The result always has one entry
// per configured signal; failed signals map to nil.
func (e *Ensemble) Evaluate(w features.Window) map[string]*models.SignalPrediction {
	out := make(map[string]*models.SignalPrediction, len(e.signals))
	for _, sig := range e.signals {
		out[sig.Name()] = e.evaluateOne(sig, w)
	}
	return out
}

func (e *Ensemble) evaluateOne(sig Signal, w features.Window) (pred *models.SignalPrediction) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("signal panicked",
				applogger.String("signal", sig.Name()),
				applogger.Any("panic", r),
			)
			pred = nil
		}
	}()

	price, err := sig.Predict(w)
	if err != nil {
		e.log.Warn("signal failed",
			applogger.String("signal", sig.Name()),
			applogger.Error(err),
		)
		return nil
	}
	return &models.SignalPrediction{
		Signal:     sig.Name(),
		Price:      price,
		Confidence: sig.Confidence(),
	}
}

// Signals returns the configured signals, in evaluation order.
func (e *Ensemble) Signals() []Signal {
	return e.signals
}

// Blend returns the arithmetic mean of present predictions, or fallback
// when every signal failed.
func Blend(preds map[string]*models.SignalPrediction, fallback float64) float64 {
	var sum float64
	var n int
	for _, p := range preds {
		if p != nil {
			sum += p.Price
			n++
		}
	}
	if n == 0 {
		return fallback
	}
	return sum / float64(n)
}
