package models

// PredictRequest is the body of POST /api/predict.
type PredictRequest struct {
	Symbol    string `json:"symbol" validate:"required"`
	Timeframe int    `json:"timeframe" default:"7" validate:"gte=1,lte=365"`
}

// PredictResponse mirrors Forecast in the wire shape clients expect:
// flat prediction/confidence maps keyed by signal name, nil for signals
// that produced no estimate.
type PredictResponse struct {
	Symbol            string              `json:"symbol"`
	CurrentPrice      float64             `json:"current_price"`
	Predictions       map[string]*float64 `json:"predictions"`
	Confidences       map[string]*float64 `json:"confidences"`
	FuturePredictions []FuturePoint       `json:"future_predictions"`
	Timestamp         string              `json:"timestamp"`
}

// SpotResponse is the body of GET /api/price.
type SpotResponse struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// ModelStatus describes one forecasting signal for GET /api/models/status.
type ModelStatus struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
	Available  bool    `json:"available"`
}
