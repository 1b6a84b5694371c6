package bootstrap

import (
	"context"

	"secret-santa/internal/exchange"
	"secret-santa/internal/pkg/config"
	"secret-santa/internal/usecase/commands"
	"secret-santa/internal/usecase/shared"

	"go.uber.org/fx"
)

var ExchangeModule = fx.Module("exchange",
	fx.Provide(
		NewExchangeState,
	),
	fx.Invoke(
		InitExchange,
	),
)

func NewExchangeState(cfg config.Config) (*exchange.State, error) {
	return exchange.NewState(cfg.Exchange)
}

// InitExchange seeds the admin account and recovers the assignment flag
// from the store before the server and scheduler start.
func InitExchange(lc fx.Lifecycle, state *exchange.State, participants shared.ParticipantRepository, setup commands.SetupCommands) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := setup.EnsureAdmin(ctx); err != nil {
				return err
			}
			return state.Init(ctx, participants)
		},
	})
}
