package signals

import "CryptoNova/internal/services/features"

// Rules combines three discrete technical votes into a conservative
// price adjustment.
type Rules struct{}

// NewRules creates the rule-ensemble signal.
func NewRules() *Rules {
	return &Rules{}
}

func (r *Rules) Name() string        { return RulesName }
func (r *Rules) Confidence() float64 { return RulesConfidence }

// Predict scores moving-average ordering (weight 0.4), RSI extremity (0.3)
// and MACD sign (0.3), then scales the latest price by up to ±4%, floored
// at 85% of it.
func (r *Rules) Predict(w features.Window) (float64, error) {
	latest := w.Latest()

	var maVote float64
	switch {
	case latest.MA7 > latest.MA14 && latest.MA14 > latest.MA21:
		maVote = 1
	case latest.MA7 < latest.MA14 && latest.MA14 < latest.MA21:
		maVote = -1
	}

	var rsiVote float64
	switch {
	case latest.RSI < 30:
		rsiVote = 1
	case latest.RSI > 70:
		rsiVote = -1
	}

	macdVote := -1.0
	if latest.MACD > 0 {
		macdVote = 1
	}

	score := 0.4*maVote + 0.3*rsiVote + 0.3*macdVote
	price := latest.Price * (1 + score*0.04)
	if floor := latest.Price * 0.85; price < floor {
		price = floor
	}
	return price, nil
}
