package components

import (
	"secret-santa/internal/domain/toss"
	"secret-santa/internal/pkg/clock"
	"secret-santa/internal/usecase/commands"
	"secret-santa/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	toss.NewEngine,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthUseCase,
		commands.NewTossUseCase,
		commands.NewParticipantUseCase,
		commands.NewNotificationUseCase,
		commands.NewSetupUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewParticipantQueries,
		queries.NewNotificationQueries,
		queries.NewApplicationQueries,
	),
)
