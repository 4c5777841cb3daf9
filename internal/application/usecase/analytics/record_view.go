package analytics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/analytics"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

var tracer = otel.Tracer("analytics_usecase")

type RecordViewUseCase struct {
	publisher service.EventPublisher
	logger    logger.Logger
	now       func() time.Time
}

func NewRecordViewUseCase(publisher service.EventPublisher, log logger.Logger) *RecordViewUseCase {
	return &RecordViewUseCase{publisher: publisher, logger: log, now: time.Now}
}

type RecordViewInput struct {
	Kind   analytics.Kind
	Target string
}

// Execute publishes a view event. Publishing is best effort: a broker failure
// is logged and swallowed so page rendering never depends on it.
func (uc *RecordViewUseCase) Execute(ctx context.Context, input RecordViewInput) error {
	ctx, span := tracer.Start(ctx, "RecordView")
	defer span.End()
	span.SetAttributes(attribute.String("kind", string(input.Kind)), attribute.String("target", input.Target))

	ev, err := analytics.NewViewEvent(input.Kind, input.Target, uc.now())
	if err != nil {
		return apperror.NewInvalidInput(err.Error(), err)
	}

	if err := uc.publisher.PublishView(ctx, *ev); err != nil {
		span.RecordError(err)
		uc.logger.Warn("Failed to publish view event",
			zap.String("kind", string(ev.Kind)), zap.String("target", ev.Target), zap.Error(err))
	}
	return nil
}
