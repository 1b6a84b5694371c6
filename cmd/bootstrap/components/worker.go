package components

import (
	"context"

	"secret-santa/internal/exchange"
	"secret-santa/internal/mailer"
	"secret-santa/internal/pkg/config"
	"secret-santa/internal/scheduler"

	"go.uber.org/fx"
)

// WorkerModule wires the two background loops: the daily reminder
// scheduler and the SMTP delivery sweeper. Both stop through the same
// cancellable context when the app shuts down.
var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewTimers,
		scheduler.New,
		NewMailTemplate,
		mailer.NewSMTPSender,
		mailer.NewSweeper,
	),
	fx.Invoke(StartWorkers),
)

func NewTimers(cfg config.Config, state *exchange.State) ([]scheduler.Timer, error) {
	return scheduler.BuildTimers(cfg.Exchange, state)
}

func NewMailTemplate(cfg config.Config) (*mailer.Template, error) {
	return mailer.NewTemplate(cfg.Mail.TemplateFile, cfg.Exchange.TeamName)
}

func StartWorkers(lc fx.Lifecycle, sched *scheduler.Scheduler, sweeper *mailer.Sweeper) {
	var cancel context.CancelFunc
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			ctx, c := context.WithCancel(context.Background())
			cancel = c
			go sched.Run(ctx)
			go sweeper.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			if cancel != nil {
				cancel()
			}
			return nil
		},
	})
}
