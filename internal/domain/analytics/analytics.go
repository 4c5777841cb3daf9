package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindPageView       Kind = "page_view"
	KindProjectOpen    Kind = "project_open"
	KindResumeDownload Kind = "resume_download"
)

var (
	ErrUnknownKind   = errors.New("unknown view event kind")
	ErrMissingTarget = errors.New("view event target is required")
)

func (k Kind) Valid() bool {
	switch k {
	case KindPageView, KindProjectOpen, KindResumeDownload:
		return true
	}
	return false
}

// Kinds lists every kind in display order.
func Kinds() []Kind {
	return []Kind{KindPageView, KindProjectOpen, KindResumeDownload}
}

// ViewEvent records one visitor interaction. Target is the section, project
// id or document the event refers to.
type ViewEvent struct {
	ID         uuid.UUID `json:"id"`
	Kind       Kind      `json:"kind"`
	Target     string    `json:"target"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewViewEvent(kind Kind, target string, at time.Time) (*ViewEvent, error) {
	ev := &ViewEvent{ID: uuid.New(), Kind: kind, Target: target, OccurredAt: at.UTC()}
	if err := ev.Validate(); err != nil {
		return nil, err
	}
	return ev, nil
}

func (e *ViewEvent) Validate() error {
	if !e.Kind.Valid() {
		return ErrUnknownKind
	}
	if e.Target == "" {
		return ErrMissingTarget
	}
	return nil
}

// Stats are the aggregated counters shown to the site owner.
type Stats struct {
	Totals  map[Kind]int64            `json:"totals"`
	Targets map[Kind]map[string]int64 `json:"targets"`
}

type CounterRepository interface {
	Increment(ctx context.Context, ev ViewEvent) error
	Stats(ctx context.Context) (*Stats, error)
}
