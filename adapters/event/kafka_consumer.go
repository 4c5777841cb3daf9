package event

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/pkg/logger"
)

// Handler processes one message value. Returning an error leaves the message
// uncommitted so it is redelivered.
type Handler func(ctx context.Context, value []byte) error

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

const defaultRetryBackoff = time.Second

type Consumer struct {
	reader  messageReader
	logger  logger.Logger
	backoff time.Duration
}

func NewViewEventsConsumer(brokers []string, groupID string, log logger.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    TopicViewEvents,
		GroupID:  groupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	return &Consumer{
		reader:  reader,
		logger:  log.With(zap.String("topic", TopicViewEvents)),
		backoff: defaultRetryBackoff,
	}
}

// Run reads until ctx is cancelled or the reader is closed. Messages that
// fail to decode are committed and skipped; handler failures are retried on
// redelivery. Fetch errors are retried after a backoff.
func (c *Consumer) Run(ctx context.Context, handle Handler) error {
	c.logger.Info("Worker listening")
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) {
				c.logger.Warn("Kafka reader closed", zap.Error(err))
				return err
			}
			c.logger.Error("Failed to read message from Kafka", err, zap.Duration("retry_in", c.backoff))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(c.backoff):
			}
			continue
		}

		if err := handle(ctx, msg.Value); err != nil {
			var skip *SkipError
			if !errors.As(err, &skip) {
				c.logger.Error("Failed to process message", err, zap.String("key", string(msg.Key)))
				continue
			}
			c.logger.Warn("Skipping malformed message", zap.String("key", string(msg.Key)), zap.Error(err))
		}

		if err := c.reader.CommitMessages(context.WithoutCancel(ctx), msg); err != nil {
			c.logger.Error("Failed to commit message", err)
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}

// SkipError marks a message that can never be processed.
type SkipError struct {
	Cause error
}

func (e *SkipError) Error() string { return "unprocessable message: " + e.Cause.Error() }

func (e *SkipError) Unwrap() error { return e.Cause }
