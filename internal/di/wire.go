//go:build wireinject
// +build wireinject

package di

import (
	"CryptoNova/pkg/config"
	"CryptoNova/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideCacheService,

		ProvideMarketSource,
		ProvideLimiter,
		ProvidePriceCache,
		ProvideFetcher,

		ProvideEnsemble,
		ProvideForecaster,

		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
