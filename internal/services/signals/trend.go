package signals

import (
	"gonum.org/v1/gonum/stat"

	"CryptoNova/internal/services/features"
)

const trendPoints = 7

// Trend extrapolates a least-squares linear fit of recent prices.
type Trend struct{}

// NewTrend creates the trend-extrapolation signal.
func NewTrend() *Trend {
	return &Trend{}
}

func (t *Trend) Name() string        { return TrendName }
func (t *Trend) Confidence() float64 { return TrendConfidence }

// Predict fits the last 7 prices against their index and extends the
// latest price by twice the slope. With fewer than 2 points the estimate
// degrades to a 0.5% uplift. Floored at 90% of the latest price.
func (t *Trend) Predict(w features.Window) (float64, error) {
	rows := w.Rows
	if len(rows) > trendPoints {
		rows = rows[len(rows)-trendPoints:]
	}
	current := w.Latest().Price

	var price float64
	if len(rows) < 2 {
		price = current * 1.005
	} else {
		xs := make([]float64, len(rows))
		ys := make([]float64, len(rows))
		for i, row := range rows {
			xs[i] = float64(i)
			ys[i] = row.Price
		}
		_, slope := stat.LinearRegression(xs, ys, nil, false)
		price = current + 2*slope
	}

	if floor := current * 0.9; price < floor {
		price = floor
	}
	return price, nil
}
