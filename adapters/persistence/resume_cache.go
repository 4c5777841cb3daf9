package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

const documentKeyPrefix = "portfolio:doc:"

type redisDocumentCache struct {
	rdb *redis.Client
}

func NewRedisDocumentCache(rdb *redis.Client) service.DocumentCache {
	return &redisDocumentCache{rdb: rdb}
}

func (c *redisDocumentCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.rdb.Get(ctx, documentKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperror.NewInternal("failed to read cached document", err)
	}
	return b, true, nil
}

func (c *redisDocumentCache) Set(ctx context.Context, key string, doc []byte, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, documentKeyPrefix+key, doc, ttl).Err(); err != nil {
		return apperror.NewInternal("failed to cache document", err)
	}
	return nil
}

type noopDocumentCache struct{}

// NewNoopDocumentCache is used when Redis is not configured. Every lookup
// misses.
func NewNoopDocumentCache() service.DocumentCache {
	return noopDocumentCache{}
}

func (noopDocumentCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (noopDocumentCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
