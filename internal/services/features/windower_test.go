package features

import (
	"testing"

	"github.com/stretchr/testify/require"

	"CryptoNova/internal/domain/models"
	"CryptoNova/internal/services/indicators"
)

func frameOf(n int) indicators.Frame {
	rows := make([]indicators.Row, n)
	for i := range rows {
		rows[i] = indicators.Row{Price: float64(i)}
	}
	return indicators.Frame{Rows: rows}
}

func TestWindowsSlides(t *testing.T) {
	seq, err := Windows(frameOf(12), 10)
	require.NoError(t, err)

	var windows []Window
	for w := range seq {
		windows = append(windows, w)
	}
	require.Len(t, windows, 3)
	require.Equal(t, 9.0, windows[0].Latest().Price)
	require.Equal(t, 11.0, windows[2].Latest().Price)
	for _, w := range windows {
		require.Len(t, w.Rows, 10)
	}
}

func TestWindowsInsufficientHistory(t *testing.T) {
	_, err := Windows(frameOf(5), 10)
	require.ErrorIs(t, err, models.ErrInsufficientHistory)

	_, err = Windows(frameOf(0), 1)
	require.ErrorIs(t, err, models.ErrInsufficientHistory)
}

func TestWindowsInvalidLookback(t *testing.T) {
	_, err := Windows(frameOf(5), 0)
	require.Error(t, err)
	require.NotErrorIs(t, err, models.ErrInsufficientHistory)
}

func TestLatestWindow(t *testing.T) {
	w, err := LatestWindow(frameOf(12), 10)
	require.NoError(t, err)
	require.Len(t, w.Rows, 10)
	require.Equal(t, 11.0, w.Latest().Price)
	require.Equal(t, 2.0, w.Rows[0].Price)
}

func TestLatestWindowInsufficientHistory(t *testing.T) {
	_, err := LatestWindow(frameOf(9), 10)
	require.ErrorIs(t, err, models.ErrInsufficientHistory)
}
