package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/analytics"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const (
	TopicViewEvents = "view.events"
)

// ViewEventPayload is the wire form of a view event on TopicViewEvents.
type ViewEventPayload struct {
	EventID    string `json:"event_id"`
	Kind       string `json:"kind"`
	Target     string `json:"target"`
	OccurredAt string `json:"occurred_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	ViewEventsWriter messageWriter
	logger           logger.Logger
}

func NewKafkaProducerClient(brokers []string, log logger.Logger) (*KafkaProducerClient, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	viewWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicViewEvents,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka producer successfully.", zap.Strings("brokers", brokers))

	return &KafkaProducerClient{
		ViewEventsWriter: viewWriter,
		logger:           log,
	}, nil
}

var _ service.EventPublisher = (*KafkaProducerClient)(nil)

// PublishView writes ev to TopicViewEvents keyed by its target, so counts for
// one target stay on one partition.
func (c *KafkaProducerClient) PublishView(ctx context.Context, ev analytics.ViewEvent) error {
	value, err := json.Marshal(ToViewEventPayload(ev))
	if err != nil {
		return fmt.Errorf("marshal view event: %w", err)
	}
	if err := c.ViewEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.Target),
		Value: value,
	}); err != nil {
		return fmt.Errorf("publish view event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ViewEventsWriter != nil {
		if err := c.ViewEventsWriter.Close(); err != nil {
			c.logger.Error("Failed to close Kafka writer", err)
		}
	}
	c.logger.Info("Closed Kafka producer")
}
