package bootstrap

import (
	"secret-santa/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.ExchangeConfig { return cfg.Exchange },
		func(cfg config.Config) config.MailConfig { return cfg.Mail },
	),
)
