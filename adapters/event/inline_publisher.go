package event

import (
	"context"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/analytics"
)

type inlinePublisher struct {
	counters analytics.CounterRepository
}

// NewInlinePublisher counts events directly when no broker is configured.
func NewInlinePublisher(counters analytics.CounterRepository) service.EventPublisher {
	return &inlinePublisher{counters: counters}
}

func (p *inlinePublisher) PublishView(ctx context.Context, ev analytics.ViewEvent) error {
	return p.counters.Increment(ctx, ev)
}
