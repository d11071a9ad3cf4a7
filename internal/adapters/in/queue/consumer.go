// Package queue contains the inbound message consumers. One generic
// receive loop serves every queue; per-queue routers decode payloads and
// dispatch them to command handlers.
package queue

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/ports"
)

const (
	defaultMaxMessages = 10
	defaultWaitSeconds = 20
	defaultBackoff     = 5 * time.Second
)

// Router maps one raw message body to a use case call. Implementations
// must return nil for messages that should be acknowledged without
// processing (unknown event types, undecodable payloads) and an error
// only when the mapped use case failed, leaving the message eligible for
// redelivery.
type Router interface {
	Name() string
	Route(ctx context.Context, body []byte) error
}

// Consumer runs an unbounded receive loop against one queue. A message is
// deleted only when its route call returns nil; a transport receive error
// pauses the loop for a fixed backoff instead of terminating it.
// Cancellation is cooperative: in-flight messages finish before the loop
// observes the context between cycles.
type Consumer struct {
	client      ports.QueueClient
	router      Router
	logger      *slog.Logger
	maxMessages int
	waitSeconds int
	backoff     time.Duration
}

// NewConsumer creates a consumer binding the router to the queue client.
func NewConsumer(client ports.QueueClient, router Router, logger *slog.Logger) *Consumer {
	return &Consumer{
		client:      client,
		router:      router,
		logger:      logger.With("consumer", router.Name()),
		maxMessages: defaultMaxMessages,
		waitSeconds: defaultWaitSeconds,
		backoff:     defaultBackoff,
	}
}

// Run processes messages until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) {
	c.logger.InfoContext(ctx, "consumer started")

	for {
		if ctx.Err() != nil {
			c.logger.InfoContext(ctx, "consumer stopped")
			return
		}

		messages, err := c.client.Receive(ctx, c.maxMessages, c.waitSeconds)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}

			c.logger.ErrorContext(ctx, "receive failed", "error", err)
			c.sleep(ctx)
			continue
		}

		for _, message := range messages {
			c.process(ctx, message)
		}
	}
}

func (c *Consumer) process(ctx context.Context, message ports.QueueMessage) {
	if err := c.router.Route(ctx, message.Body); err != nil {
		// no ack: the transport redelivers the message
		c.logger.ErrorContext(ctx, "message processing failed",
			"message_id", message.ID,
			"error", err,
		)
		return
	}

	if err := c.client.Delete(ctx, message.ReceiptHandle); err != nil {
		c.logger.ErrorContext(ctx, "message delete failed",
			"message_id", message.ID,
			"error", err,
		)
	}
}

func (c *Consumer) sleep(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(c.backoff):
	}
}
