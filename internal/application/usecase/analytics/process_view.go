package analytics

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/domain/analytics"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// ProcessViewUseCase applies one consumed view event to the counters.
type ProcessViewUseCase struct {
	counters analytics.CounterRepository
	logger   logger.Logger
}

func NewProcessViewUseCase(counters analytics.CounterRepository, log logger.Logger) *ProcessViewUseCase {
	return &ProcessViewUseCase{counters: counters, logger: log}
}

func (uc *ProcessViewUseCase) Execute(ctx context.Context, ev analytics.ViewEvent) error {
	ctx, span := tracer.Start(ctx, "ProcessView")
	defer span.End()

	if err := ev.Validate(); err != nil {
		return err
	}
	if err := uc.counters.Increment(ctx, ev); err != nil {
		span.RecordError(err)
		return err
	}
	uc.logger.Info("Counted view event",
		zap.String("event_id", ev.ID.String()), zap.String("kind", string(ev.Kind)), zap.String("target", ev.Target))
	return nil
}

type StatsUseCase struct {
	counters analytics.CounterRepository
}

func NewStatsUseCase(counters analytics.CounterRepository) *StatsUseCase {
	return &StatsUseCase{counters: counters}
}

func (uc *StatsUseCase) Execute(ctx context.Context) (*analytics.Stats, error) {
	ctx, span := tracer.Start(ctx, "Stats")
	defer span.End()
	return uc.counters.Stats(ctx)
}
