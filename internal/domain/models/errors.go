package models

import "errors"

var (
	// ErrUpstreamUnavailable marks a failed market data request. Callers
	// decide whether to surface it or substitute synthetic history.
	ErrUpstreamUnavailable = errors.New("upstream market data unavailable")

	// ErrInsufficientHistory means the series was too short to compute a
	// full indicator window.
	ErrInsufficientHistory = errors.New("insufficient price history")
)
