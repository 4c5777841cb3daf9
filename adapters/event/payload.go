package event

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio/internal/domain/analytics"
)

func ToViewEventPayload(ev analytics.ViewEvent) ViewEventPayload {
	return ViewEventPayload{
		EventID:    ev.ID.String(),
		Kind:       string(ev.Kind),
		Target:     ev.Target,
		OccurredAt: ev.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
}

// DecodeViewEvent parses and validates a message value from TopicViewEvents.
func DecodeViewEvent(value []byte) (*analytics.ViewEvent, error) {
	var p ViewEventPayload
	if err := json.Unmarshal(value, &p); err != nil {
		return nil, fmt.Errorf("unmarshal view event: %w", err)
	}
	id, err := uuid.Parse(p.EventID)
	if err != nil {
		return nil, fmt.Errorf("view event id: %w", err)
	}
	at, err := time.Parse(time.RFC3339Nano, p.OccurredAt)
	if err != nil {
		return nil, fmt.Errorf("view event time: %w", err)
	}
	ev := &analytics.ViewEvent{ID: id, Kind: analytics.Kind(p.Kind), Target: p.Target, OccurredAt: at}
	if err := ev.Validate(); err != nil {
		return nil, err
	}
	return ev, nil
}
