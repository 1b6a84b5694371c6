package components

import (
	"secret-santa/internal/handler"
	"secret-santa/internal/handler/api"
	"secret-santa/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewParticipantHandler,
		api.NewNotificationHandler,
		api.NewApplicationHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
