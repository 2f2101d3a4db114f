package bootstrap

import (
	"context"
	"log/slog"

	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/pkg/config"
	"hotelhub/internal/scheduler"
	"hotelhub/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewDiscountSweeper,
	),
	fx.Invoke(registerSweeper),
)

func NewDiscountSweeper(
	discountRepo commands.DiscountRepository,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *scheduler.DiscountSweeper {
	return scheduler.NewDiscountSweeper(discountRepo, clk, cfg.Scheduler, logger)
}

func registerSweeper(lc fx.Lifecycle, sweeper *scheduler.DiscountSweeper, cfg config.Config) {
	if !cfg.Scheduler.DiscountSweepEnabled {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
