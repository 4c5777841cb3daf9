package service

import (
	"context"
	"time"

	"github.com/khoahotran/portfolio/internal/domain/analytics"
)

type EventPublisher interface {
	PublishView(ctx context.Context, ev analytics.ViewEvent) error
}

// DocumentCache keeps rendered documents by key. A miss is (nil, false, nil).
type DocumentCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, doc []byte, ttl time.Duration) error
}
