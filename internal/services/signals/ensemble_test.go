package signals

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"CryptoNova/internal/domain/models"
	"CryptoNova/internal/services/features"
	"CryptoNova/internal/services/indicators"
	applogger "CryptoNova/pkg/logger"
)

func windowWith(latest indicators.Row, n int) features.Window {
	rows := make([]indicators.Row, n)
	for i := range rows {
		rows[i] = latest
	}
	return features.Window{Rows: rows}
}

func neutralRow() indicators.Row {
	return indicators.Row{
		Price:      100,
		MA7:        100,
		MA14:       100,
		MA21:       100,
		RSI:        50,
		MACD:       1,
		Volatility: 0.02,
	}
}

func TestMomentumNeutralWindow(t *testing.T) {
	sig := NewMomentum(rand.New(rand.NewSource(1)))
	w := windowWith(neutralRow(), 10)

	price, err := sig.Predict(w)
	require.NoError(t, err)
	// Only the noise term moves the factor; volatility bounds it tightly.
	require.InDelta(t, 100, price, 100*0.011)
	require.GreaterOrEqual(t, price, 80.0)
}

func TestMomentumFloor(t *testing.T) {
	row := neutralRow()
	row.MA7 = 40
	row.RSI = 100
	sig := NewMomentum(rand.New(rand.NewSource(1)))

	price, err := sig.Predict(windowWith(row, 10))
	require.NoError(t, err)
	require.Equal(t, 80.0, price)
}

func TestMomentumZeroMA21(t *testing.T) {
	row := neutralRow()
	row.MA21 = 0
	sig := NewMomentum(rand.New(rand.NewSource(1)))

	_, err := sig.Predict(windowWith(row, 10))
	require.Error(t, err)
}

func TestRulesBullish(t *testing.T) {
	row := neutralRow()
	row.MA7, row.MA14, row.MA21 = 103, 102, 101
	row.RSI = 25
	row.MACD = 2

	price, err := NewRules().Predict(windowWith(row, 10))
	require.NoError(t, err)
	// All three votes bullish: score 1.0, +4%.
	require.InDelta(t, 104, price, 1e-9)
}

func TestRulesBearishFloored(t *testing.T) {
	row := neutralRow()
	row.MA7, row.MA14, row.MA21 = 99, 100, 101
	row.RSI = 80
	row.MACD = -2

	price, err := NewRules().Predict(windowWith(row, 10))
	require.NoError(t, err)
	// Score -1.0 gives -4%, above the 85% floor.
	require.InDelta(t, 96, price, 1e-9)
}

func TestRulesNeutral(t *testing.T) {
	row := neutralRow()
	row.MACD = 1

	price, err := NewRules().Predict(windowWith(row, 10))
	require.NoError(t, err)
	// Only the MACD vote fires: score 0.3, +1.2%.
	require.InDelta(t, 101.2, price, 1e-9)
}

func TestTrendRisingWindow(t *testing.T) {
	rows := make([]indicators.Row, 10)
	for i := range rows {
		rows[i] = indicators.Row{Price: 100 + float64(i)}
	}
	price, err := NewTrend().Predict(features.Window{Rows: rows})
	require.NoError(t, err)
	// Slope 1 over the last 7 points extends the latest price by 2.
	require.InDelta(t, 111, price, 1e-9)
}

func TestTrendSinglePoint(t *testing.T) {
	price, err := NewTrend().Predict(features.Window{Rows: []indicators.Row{{Price: 200}}})
	require.NoError(t, err)
	require.InDelta(t, 201, price, 1e-9)
}

func TestTrendFloor(t *testing.T) {
	rows := make([]indicators.Row, 7)
	for i := range rows {
		rows[i] = indicators.Row{Price: 1000 - float64(i)*100}
	}
	price, err := NewTrend().Predict(features.Window{Rows: rows})
	require.NoError(t, err)
	require.Equal(t, 400*0.9, price)
}

type failingSignal struct{}

func (failingSignal) Name() string        { return "failing" }
func (failingSignal) Confidence() float64 { return 50 }
func (failingSignal) Predict(features.Window) (float64, error) {
	return 0, errors.New("no data")
}

type panickySignal struct{}

func (panickySignal) Name() string        { return "panicky" }
func (panickySignal) Confidence() float64 { return 50 }
func (panickySignal) Predict(features.Window) (float64, error) {
	panic("out of range")
}

func TestEnsembleEvaluate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := DefaultEnsemble(applogger.Nop(), rng)
	w := windowWith(neutralRow(), 10)

	preds := e.Evaluate(w)
	require.Len(t, preds, 3)
	require.NotNil(t, preds[MomentumName])
	require.NotNil(t, preds[RulesName])
	require.NotNil(t, preds[TrendName])

	require.Equal(t, MomentumConfidence, preds[MomentumName].Confidence)
	require.Equal(t, RulesConfidence, preds[RulesName].Confidence)
	require.Equal(t, TrendConfidence, preds[TrendName].Confidence)

	current := w.Latest().Price
	require.GreaterOrEqual(t, preds[MomentumName].Price, current*0.8)
	require.GreaterOrEqual(t, preds[RulesName].Price, current*0.85)
	require.GreaterOrEqual(t, preds[TrendName].Price, current*0.9)
}

func TestEnsembleFailedSignalsAreAbsent(t *testing.T) {
	e := NewEnsemble(applogger.Nop(), NewRules(), failingSignal{}, panickySignal{})
	preds := e.Evaluate(windowWith(neutralRow(), 10))

	require.Len(t, preds, 3)
	require.NotNil(t, preds[RulesName])
	require.Nil(t, preds["failing"])
	require.Nil(t, preds["panicky"])
}

func TestBlend(t *testing.T) {
	preds := map[string]*models.SignalPrediction{
		"a": {Price: 100},
		"b": {Price: 110},
		"c": nil,
	}
	require.Equal(t, 105.0, Blend(preds, 50))
	require.Equal(t, 50.0, Blend(map[string]*models.SignalPrediction{"a": nil}, 50))
	require.Equal(t, 50.0, Blend(nil, 50))
}
