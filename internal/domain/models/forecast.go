package models

import "time"

// SignalPrediction is one model's next-day price estimate.
type SignalPrediction struct {
	Signal     string  `json:"signal"`
	Price      float64 `json:"price"`
	Confidence float64 `json:"confidence"`
}

// FuturePoint is a single projected day in a multi-day horizon.
type FuturePoint struct {
	Date           string  `json:"date"`
	PredictedPrice float64 `json:"predicted_price"`
	Confidence     float64 `json:"confidence"`
}

// Forecast is the full output for one symbol: per-signal next-day
// predictions plus a projected horizon. A nil entry in Predictions means
// that signal failed for this window.
type Forecast struct {
	Symbol       string                       `json:"symbol"`
	CurrentPrice float64                      `json:"current_price"`
	Predictions  map[string]*SignalPrediction `json:"predictions"`
	Future       []FuturePoint                `json:"future_predictions"`
	Timestamp    time.Time                    `json:"timestamp"`
}
