package persistence

import (
	"context"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/domain/analytics"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const (
	viewTotalsKey       = "portfolio:views:totals"
	viewTargetKeyPrefix = "portfolio:views:"
)

type redisViewCounterRepo struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewRedisViewCounterRepo(rdb *redis.Client, log logger.Logger) analytics.CounterRepository {
	return &redisViewCounterRepo{rdb: rdb, logger: log}
}

func targetKey(kind analytics.Kind) string {
	return viewTargetKeyPrefix + string(kind)
}

func (r *redisViewCounterRepo) Increment(ctx context.Context, ev analytics.ViewEvent) error {
	pipe := r.rdb.TxPipeline()
	pipe.HIncrBy(ctx, viewTotalsKey, string(ev.Kind), 1)
	pipe.HIncrBy(ctx, targetKey(ev.Kind), ev.Target, 1)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperror.NewInternal("failed to increment view counters", err)
	}
	return nil
}

func (r *redisViewCounterRepo) Stats(ctx context.Context) (*analytics.Stats, error) {
	totals, err := r.rdb.HGetAll(ctx, viewTotalsKey).Result()
	if err != nil {
		return nil, apperror.NewInternal("failed to read view totals", err)
	}

	stats := &analytics.Stats{
		Totals:  make(map[analytics.Kind]int64),
		Targets: make(map[analytics.Kind]map[string]int64),
	}
	for _, kind := range analytics.Kinds() {
		stats.Totals[kind] = r.parseCount(totals[string(kind)], string(kind))

		raw, err := r.rdb.HGetAll(ctx, targetKey(kind)).Result()
		if err != nil {
			return nil, apperror.NewInternal("failed to read view targets", err)
		}
		targets := make(map[string]int64, len(raw))
		for target, v := range raw {
			targets[target] = r.parseCount(v, target)
		}
		stats.Targets[kind] = targets
	}
	return stats, nil
}

func (r *redisViewCounterRepo) parseCount(v, field string) int64 {
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		r.logger.Warn("Ignoring malformed view counter", zap.String("field", field), zap.String("value", v))
		return 0
	}
	return n
}

type memoryViewCounterRepo struct {
	mu      sync.Mutex
	totals  map[analytics.Kind]int64
	targets map[analytics.Kind]map[string]int64
}

// NewMemoryViewCounterRepo keeps counters in process memory. It is used when
// Redis is not configured; counts are lost on restart.
func NewMemoryViewCounterRepo() analytics.CounterRepository {
	return &memoryViewCounterRepo{
		totals:  make(map[analytics.Kind]int64),
		targets: make(map[analytics.Kind]map[string]int64),
	}
}

func (r *memoryViewCounterRepo) Increment(_ context.Context, ev analytics.ViewEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.totals[ev.Kind]++
	if r.targets[ev.Kind] == nil {
		r.targets[ev.Kind] = make(map[string]int64)
	}
	r.targets[ev.Kind][ev.Target]++
	return nil
}

func (r *memoryViewCounterRepo) Stats(context.Context) (*analytics.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := &analytics.Stats{
		Totals:  make(map[analytics.Kind]int64),
		Targets: make(map[analytics.Kind]map[string]int64),
	}
	for _, kind := range analytics.Kinds() {
		stats.Totals[kind] = r.totals[kind]
		targets := make(map[string]int64, len(r.targets[kind]))
		for target, n := range r.targets[kind] {
			targets[target] = n
		}
		stats.Targets[kind] = targets
	}
	return stats, nil
}
