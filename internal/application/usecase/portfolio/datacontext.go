package portfolio

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

var ErrLoading = errors.New("portfolio data is still loading")

// Snapshot is the observable state of a DataContext. Dataset is set only when
// Status is ready and Err only when it is failed.
type Snapshot struct {
	Status  Status
	Dataset *domain.Dataset
	Err     error
}

// DataContext loads the dataset once, after a fixed delay, and hands the same
// read-only value to every reader. There is no refresh.
type DataContext struct {
	repo   domain.Repository
	delay  time.Duration
	logger logger.Logger

	once sync.Once
	done chan struct{}

	mu   sync.RWMutex
	snap Snapshot
}

func NewDataContext(repo domain.Repository, delay time.Duration, log logger.Logger) *DataContext {
	return &DataContext{
		repo:   repo,
		delay:  delay,
		logger: log,
		done:   make(chan struct{}),
		snap:   Snapshot{Status: StatusLoading},
	}
}

var tracer = otel.Tracer("portfolio_usecase")

// Start begins the load in the background. Calls after the first are no-ops.
func (dc *DataContext) Start(ctx context.Context) {
	dc.once.Do(func() {
		go dc.load(ctx)
	})
}

func (dc *DataContext) load(ctx context.Context) {
	defer close(dc.done)

	ctx, span := tracer.Start(ctx, "DataContext.load")
	defer span.End()

	if dc.delay > 0 {
		t := time.NewTimer(dc.delay)
		select {
		case <-ctx.Done():
			t.Stop()
			dc.finish(Snapshot{Status: StatusFailed, Err: ctx.Err()})
			span.RecordError(ctx.Err())
			return
		case <-t.C:
		}
	}

	d, err := dc.repo.Load(ctx)
	if err != nil {
		dc.logger.Error("Failed to load portfolio data", err)
		span.RecordError(err)
		dc.finish(Snapshot{Status: StatusFailed, Err: err})
		return
	}

	dc.logger.Info("Portfolio data ready",
		zap.Int("companies", len(d.Professional.Companies)),
		zap.Int("certifications", len(d.Certifications)),
		zap.String("version", d.Version()))
	dc.finish(Snapshot{Status: StatusReady, Dataset: d})
}

func (dc *DataContext) finish(s Snapshot) {
	dc.mu.Lock()
	dc.snap = s
	dc.mu.Unlock()
}

func (dc *DataContext) Snapshot() Snapshot {
	dc.mu.RLock()
	defer dc.mu.RUnlock()
	return dc.snap
}

// Wait blocks until the load has finished or ctx is done. If ctx ends first
// the loading snapshot is returned with ctx.Err().
func (dc *DataContext) Wait(ctx context.Context) (Snapshot, error) {
	select {
	case <-dc.done:
		return dc.Snapshot(), nil
	case <-ctx.Done():
		return dc.Snapshot(), ctx.Err()
	}
}

// Dataset returns the loaded dataset, or the load error. While loading it
// returns ErrLoading.
func (dc *DataContext) Dataset() (*domain.Dataset, error) {
	s := dc.Snapshot()
	switch s.Status {
	case StatusReady:
		return s.Dataset, nil
	case StatusFailed:
		return nil, s.Err
	}
	return nil, ErrLoading
}
