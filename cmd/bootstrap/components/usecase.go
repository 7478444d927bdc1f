package components

import (
	"stayfront/internal/pkg/clock"
	"stayfront/internal/pkg/config"
	"stayfront/internal/pkg/metrics"
	"stayfront/internal/upstream"
	"stayfront/internal/usecase/commands"
	"stayfront/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(client upstream.Client, cfg config.Config, m *metrics.Metrics) queries.PropertyQueries {
			return queries.NewPropertyQueries(client, cfg.Cache, m)
		},
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)
