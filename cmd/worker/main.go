package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/adapters/event"
	"github.com/khoahotran/portfolio/adapters/persistence"
	analyticsUC "github.com/khoahotran/portfolio/internal/application/usecase/analytics"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
	"github.com/khoahotran/portfolio/pkg/tracing"
)

const consumerGroup = "view-counter-group"

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := tracing.NewTracerProvider(cfg.Jaeger.OTLPEndpoint, appLogger, "portfolio-worker")
	if err != nil {
		appLogger.Fatal("Failed to initialize tracer", err)
	}
	defer shutdownTracer(context.Background())

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("Worker needs kafka.brokers", nil)
	}

	// Redis
	rdb, err := persistence.NewRedisClient(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer rdb.Close()

	// Worker Use Case
	processView := analyticsUC.NewProcessViewUseCase(persistence.NewRedisViewCounterRepo(rdb, appLogger), appLogger)

	// Kafka Consumer
	consumer := event.NewViewEventsConsumer(cfg.Kafka.Brokers, consumerGroup, appLogger)
	defer consumer.Close()

	err = consumer.Run(ctx, func(ctx context.Context, value []byte) error {
		ev, err := event.DecodeViewEvent(value)
		if err != nil {
			return &event.SkipError{Cause: err}
		}
		return processView.Execute(ctx, *ev)
	})
	if err != nil {
		appLogger.Error("Worker stopped with error", err)
	}
	appLogger.Info("Worker stopped", zap.String("group", consumerGroup))
}
