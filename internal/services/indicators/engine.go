package indicators

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"CryptoNova/internal/domain/models"
)

const (
	shortWindow = 7
	midWindow   = 14
	longWindow  = 21

	rsiPeriod  = 14
	macdFast   = 12
	macdSlow   = 26
	volWindow  = 7
	bollWindow = 20
	neutralRSI = 50
)

// Row is one fully computed indicator row. Rows exist only for positions
// where every indicator has a complete window.
type Row struct {
	Date           time.Time
	Price          float64
	PriceChange    float64
	MA7            float64
	MA14           float64
	MA21           float64
	Volatility     float64
	RSI            float64
	MACD           float64
	BollingerUpper float64
	BollingerLower float64
}

// Frame is the indicator table for one series, oldest first.
type Frame struct {
	Rows []Row
}

// Compute derives the indicator frame from a daily price series. Positions
// without a complete long moving-average window are dropped, so a series of
// n points yields n-longWindow+1 rows (none when shorter than the window).
func Compute(series models.PriceSeries) Frame {
	n := len(series)
	if n == 0 {
		return Frame{}
	}

	prices := series.Prices()
	changes := pctChanges(prices)
	macd := macdLine(prices)
	rsi := rsiSeries(changes)

	rows := make([]Row, 0)
	for t := longWindow - 1; t < n; t++ {
		ma20 := stat.Mean(prices[t-bollWindow+1:t+1], nil)
		bollDev := 2 * stat.StdDev(prices[t-bollWindow+1:t+1], nil)
		rows = append(rows, Row{
			Date:           series[t].Timestamp,
			Price:          prices[t],
			PriceChange:    changes[t],
			MA7:            stat.Mean(prices[t-shortWindow+1:t+1], nil),
			MA14:           stat.Mean(prices[t-midWindow+1:t+1], nil),
			MA21:           stat.Mean(prices[t-longWindow+1:t+1], nil),
			Volatility:     stat.StdDev(changes[t-volWindow+1:t+1], nil),
			RSI:            rsi[t],
			MACD:           macd[t],
			BollingerUpper: ma20 + bollDev,
			BollingerLower: ma20 - bollDev,
		})
	}
	return Frame{Rows: rows}
}

// pctChanges returns day-over-day relative changes; index 0 is 0.
func pctChanges(prices []float64) []float64 {
	out := make([]float64, len(prices))
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			out[i] = (prices[i] - prices[i-1]) / prices[i-1]
		}
	}
	return out
}

// rsiSeries computes a 14-period RSI from simple rolling means of gains and
// losses. A window with no losses saturates at 100; a flat window is
// neutral at 50.
func rsiSeries(changes []float64) []float64 {
	out := make([]float64, len(changes))
	for t := range out {
		out[t] = neutralRSI
	}
	for t := rsiPeriod; t < len(changes); t++ {
		var gain, loss float64
		for _, c := range changes[t-rsiPeriod+1 : t+1] {
			if c > 0 {
				gain += c
			} else {
				loss -= c
			}
		}
		gain /= rsiPeriod
		loss /= rsiPeriod

		switch {
		case gain == 0 && loss == 0:
			out[t] = neutralRSI
		case loss == 0:
			out[t] = 100
		default:
			rs := gain / loss
			out[t] = 100 - 100/(1+rs)
		}
	}
	return out
}

// macdLine is EMA(fast) − EMA(slow), both seeded with the first price.
func macdLine(prices []float64) []float64 {
	fast := ema(prices, macdFast)
	slow := ema(prices, macdSlow)
	out := make([]float64, len(prices))
	for i := range out {
		out[i] = fast[i] - slow[i]
	}
	return out
}

func ema(values []float64, span int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	alpha := 2.0 / float64(span+1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}
