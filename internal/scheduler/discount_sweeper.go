package scheduler

import (
	"context"
	"log/slog"
	"time"

	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/pkg/config"
	"hotelhub/internal/usecase/commands"
)

// DiscountSweeper periodically purges discounts whose window has closed.
// Expired discounts never affect pricing (the read side filters by window),
// so the sweep is pure housekeeping and its interval is not correctness
// sensitive.
type DiscountSweeper struct {
	discountRepo commands.DiscountRepository
	clock        clock.Clock
	interval     time.Duration
	logger       *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewDiscountSweeper(
	discountRepo commands.DiscountRepository,
	clk clock.Clock,
	cfg config.SchedulerConfig,
	logger *slog.Logger,
) *DiscountSweeper {
	return &DiscountSweeper{
		discountRepo: discountRepo,
		clock:        clk,
		interval:     cfg.DiscountSweepInterval,
		logger:       logger,
	}
}

// Start runs one sweep immediately, then one per interval until Stop.
func (s *DiscountSweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		s.sweep(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()

	s.logger.Info("discount sweeper started", "interval", s.interval)
}

func (s *DiscountSweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("discount sweeper stopped")
}

func (s *DiscountSweeper) sweep(ctx context.Context) {
	deleted, err := s.discountRepo.DeleteExpired(ctx, s.clock.Now())
	if err != nil {
		s.logger.Error("failed to sweep expired discounts", "error", err)
		return
	}
	if deleted > 0 {
		s.logger.Info("swept expired discounts", "deleted", deleted)
	}
}
