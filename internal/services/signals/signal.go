package signals

import "CryptoNova/internal/services/features"

// Fixed per-model confidence scores reported alongside each prediction.
const (
	MomentumConfidence = 94.2
	RulesConfidence    = 91.8
	TrendConfidence    = 87.5
)

// Canonical signal names used as map keys in forecasts.
const (
	MomentumName = "momentum"
	RulesName    = "rules"
	TrendName    = "trend"
)

// Signal turns an indicator window into a next-day price estimate. The
// current price is taken from the window's latest row.
type Signal interface {
	Name() string
	Confidence() float64
	Predict(w features.Window) (float64, error)
}
