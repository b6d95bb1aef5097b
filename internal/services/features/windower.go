package features

import (
	"fmt"
	"iter"

	"CryptoNova/internal/domain/models"
	"CryptoNova/internal/services/indicators"
)

// Window is a contiguous run of indicator rows, newest last.
type Window struct {
	Rows []indicators.Row
}

// Latest returns the most recent row in the window.
func (w Window) Latest() indicators.Row {
	return w.Rows[len(w.Rows)-1]
}

// Windows yields every sliding window of size lookback over the frame,
// oldest first. Returns models.ErrInsufficientHistory when the frame is
// shorter than lookback.
func Windows(frame indicators.Frame, lookback int) (iter.Seq[Window], error) {
	if lookback <= 0 {
		return nil, fmt.Errorf("lookback must be positive, got %d", lookback)
	}
	if len(frame.Rows) < lookback {
		return nil, fmt.Errorf("%w: have %d rows, need %d", models.ErrInsufficientHistory, len(frame.Rows), lookback)
	}
	return func(yield func(Window) bool) {
		for i := 0; i+lookback <= len(frame.Rows); i++ {
			if !yield(Window{Rows: frame.Rows[i : i+lookback]}) {
				return
			}
		}
	}, nil
}

// LatestWindow returns the most recent lookback-sized window.
func LatestWindow(frame indicators.Frame, lookback int) (Window, error) {
	if lookback <= 0 {
		return Window{}, fmt.Errorf("lookback must be positive, got %d", lookback)
	}
	if len(frame.Rows) < lookback {
		return Window{}, fmt.Errorf("%w: have %d rows, need %d", models.ErrInsufficientHistory, len(frame.Rows), lookback)
	}
	return Window{Rows: frame.Rows[len(frame.Rows)-lookback:]}, nil
}
