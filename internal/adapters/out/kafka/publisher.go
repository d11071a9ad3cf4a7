// Package kafka adapts the messaging ports to Kafka using segmentio/kafka-go.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"orders/internal/pkg/errs"

	kafkago "github.com/segmentio/kafka-go"
)

// Publisher implements the EventPublisher port. It keeps one writer per
// recognized topic: events are published under a logical topic name which
// the configured topic table maps to a transport destination.
type Publisher struct {
	writers map[string]*kafkago.Writer
	logger  *slog.Logger
}

// NewPublisher creates a publisher for the given topic table. The table
// maps logical topic names (OrderCreated, PaymentApproved, ...) to Kafka
// topic names; publishing to a name outside the table is an error.
func NewPublisher(brokers []string, topics map[string]string, logger *slog.Logger) *Publisher {
	writers := make(map[string]*kafkago.Writer, len(topics))
	for name, kafkaTopic := range topics {
		writers[name] = &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Topic:        kafkaTopic,
			Balancer:     &kafkago.Hash{},
			RequiredAcks: kafkago.RequireOne,
		}
	}

	return &Publisher{
		writers: writers,
		logger:  logger.With("component", "kafka_publisher"),
	}
}

// Publish JSON-encodes the payload and writes it to the topic's writer.
func (p *Publisher) Publish(ctx context.Context, topic string, payload any) error {
	writer, ok := p.writers[topic]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("topic",
			errors.New("no writer configured for topic "+topic))
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	err = writer.WriteMessages(ctx, kafkago.Message{
		Value: data,
		Time:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "event published", "topic", topic)
	return nil
}

// Close releases all topic writers.
func (p *Publisher) Close() error {
	var closeErrs []error
	for _, writer := range p.writers {
		closeErrs = append(closeErrs, writer.Close())
	}
	return errors.Join(closeErrs...)
}
