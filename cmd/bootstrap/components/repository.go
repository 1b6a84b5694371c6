package components

import (
	"secret-santa/internal/infra/repo_impl"
	"secret-santa/internal/usecase/commands"
	"secret-santa/internal/usecase/queries"
	"secret-santa/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewParticipantRepository,
			fx.As(new(shared.ParticipantRepository)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(shared.NotificationRepository)),
			fx.As(new(queries.NotificationReadStore)),
			fx.As(new(commands.NotificationInboxStore)),
		),
	),
)
