package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/domain/analytics"
	"github.com/khoahotran/portfolio/pkg/logger"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	var cfg config.Config
	cfg.Redis.Addr = mr.Addr()
	rdb, err := NewRedisClient(context.Background(), cfg, logger.NewNop())
	require.NoError(t, err)
	defer rdb.Close()

	cfg.Redis.Addr = "127.0.0.1:1"
	_, err = NewRedisClient(context.Background(), cfg, logger.NewNop())
	assert.Error(t, err)
}

func TestDocumentCache(t *testing.T) {
	mr, client := setupTestRedis(t)
	cache := NewRedisDocumentCache(client)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "resume:abc")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "resume:abc", []byte("<html></html>"), time.Minute))

	doc, ok, err := cache.Get(ctx, "resume:abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "<html></html>", string(doc))

	mr.FastForward(2 * time.Minute)
	_, ok, err = cache.Get(ctx, "resume:abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNoopDocumentCache(t *testing.T) {
	cache := NewNoopDocumentCache()
	require.NoError(t, cache.Set(context.Background(), "k", []byte("v"), time.Minute))

	_, ok, err := cache.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestViewCounterRepo(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := NewRedisViewCounterRepo(client, logger.NewNop())
	ctx := context.Background()

	events := []analytics.ViewEvent{
		{Kind: analytics.KindPageView, Target: "home"},
		{Kind: analytics.KindPageView, Target: "home"},
		{Kind: analytics.KindProjectOpen, Target: "shipment-tracker"},
	}
	for _, ev := range events {
		require.NoError(t, repo.Increment(ctx, ev))
	}

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Totals[analytics.KindPageView])
	assert.Equal(t, int64(1), stats.Totals[analytics.KindProjectOpen])
	assert.Equal(t, int64(0), stats.Totals[analytics.KindResumeDownload])
	assert.Equal(t, int64(2), stats.Targets[analytics.KindPageView]["home"])
	assert.Equal(t, int64(1), stats.Targets[analytics.KindProjectOpen]["shipment-tracker"])
	assert.Empty(t, stats.Targets[analytics.KindResumeDownload])

	mr.HSet(viewTotalsKey, string(analytics.KindResumeDownload), "lots")
	stats, err = repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Totals[analytics.KindResumeDownload])
}

func TestMemoryViewCounterRepo(t *testing.T) {
	repo := NewMemoryViewCounterRepo()
	ctx := context.Background()

	require.NoError(t, repo.Increment(ctx, analytics.ViewEvent{Kind: analytics.KindResumeDownload, Target: "/resume.html"}))
	require.NoError(t, repo.Increment(ctx, analytics.ViewEvent{Kind: analytics.KindResumeDownload, Target: "/resume.html"}))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Totals[analytics.KindResumeDownload])
	assert.Equal(t, int64(0), stats.Totals[analytics.KindPageView])
	assert.Equal(t, int64(2), stats.Targets[analytics.KindResumeDownload]["/resume.html"])

	stats.Targets[analytics.KindResumeDownload]["/resume.html"] = 99
	again, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), again.Targets[analytics.KindResumeDownload]["/resume.html"])
}
