package usecase

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"CryptoNova/internal/domain/models"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func testProjector(seed int64) *Projector {
	return NewProjectorWithSource(rand.NewSource(seed), fixedNow)
}

func TestProjectHorizonLength(t *testing.T) {
	p := testProjector(1)
	preds := map[string]*models.SignalPrediction{
		"a": {Price: 100},
	}

	for _, horizon := range []int{1, 7, 30} {
		future := p.Project(100, preds, horizon)
		require.Len(t, future, horizon)
	}
}

func TestProjectDatesAreConsecutive(t *testing.T) {
	p := testProjector(1)
	future := p.Project(100, nil, 5)

	require.Equal(t, "2025-06-02", future[0].Date)
	require.Equal(t, "2025-06-06", future[4].Date)
}

func TestProjectBoundsAndConfidence(t *testing.T) {
	p := testProjector(1)
	preds := map[string]*models.SignalPrediction{
		"a": {Price: 100},
		"b": {Price: 110},
	}
	current := 100.0

	future := p.Project(current, preds, 30)
	for _, fp := range future {
		require.GreaterOrEqual(t, fp.PredictedPrice, current*0.8)
		// Base 105 with small cycle, noise and drift stays near the blend.
		require.InDelta(t, 105, fp.PredictedPrice, 105*0.08)
		require.GreaterOrEqual(t, fp.Confidence, 80.0)
		require.LessOrEqual(t, fp.Confidence, 90.0)
	}
}

func TestProjectAllSignalsAbsentUsesCurrent(t *testing.T) {
	p := testProjector(1)
	future := p.Project(200, map[string]*models.SignalPrediction{"a": nil}, 3)

	for _, fp := range future {
		require.InDelta(t, 200, fp.PredictedPrice, 200*0.08)
	}
}

func TestProjectFloorClamp(t *testing.T) {
	p := testProjector(1)
	// Blended base far below the current price forces the clamp.
	preds := map[string]*models.SignalPrediction{
		"a": {Price: 10},
	}

	future := p.Project(100, preds, 5)
	for _, fp := range future {
		require.Equal(t, 80.0, fp.PredictedPrice)
	}
}
