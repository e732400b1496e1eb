//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"watd/internal"
	"watd/internal/controllers"
	"watd/internal/providers"
	"watd/internal/services"
	"watd/internal/shipstation"
	"watd/internal/structures"
	"watd/internal/tracker"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewCacheProvider,

		services.NewActivityService,
		shipstation.NewClient,
		tracker.NewFileManager,
		tracker.NewCombinedBuilder,
		tracker.NewZstdCompressor,
		tracker.NewArchiver,
		tracker.NewOrdersService,
		tracker.NewScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}

func InitFetch(cfg *structures.CliFlags) (*internal.FetchApp, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,

		shipstation.NewClient,
		tracker.NewFileManager,
		tracker.NewCombinedBuilder,
		tracker.NewOrdersService,
		internal.NewFetchApp,
	)

	return nil, nil
}
