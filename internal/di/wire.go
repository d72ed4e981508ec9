//go:build wireinject
// +build wireinject

package di

import (
	"HedgeFolio/pkg/config"
	"HedgeFolio/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Engine
		ProvideOptimizerConfig,
		ProvideOptimizer,

		// Infrastructure
		ProvideCache,
		ProvidePublisher,

		// Use cases
		ProvideAllocator,

		// HTTP surface
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
