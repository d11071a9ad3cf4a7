package kafka

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	kafkago "github.com/segmentio/kafka-go"
)

// commitFunc commits consumer-group offsets. It is the reader's
// CommitMessages in production.
type commitFunc func(ctx context.Context, msgs ...kafkago.Message) error

// QueueClient implements the QueueClient port on top of a Kafka consumer
// group. Receive fetches without committing; fetched messages are kept in
// a pending table keyed by receipt handle until Delete acknowledges them.
//
// Kafka tracks one committed offset per partition, and committing a
// message marks every earlier offset of its partition consumed. Delete
// therefore never commits past an unacknowledged message: each partition
// keeps its fetched offsets in order, and only the contiguous
// acknowledged prefix is committed. An acknowledgment behind a gap is
// recorded and committed once the gap resolves; the gap itself stays
// uncommitted and is redelivered after a rebalance or restart, which
// gives the at-least-once redelivery the consumers rely on.
type QueueClient struct {
	reader *kafkago.Reader
	commit commitFunc

	mu         sync.Mutex
	pending    map[string]kafkago.Message
	partitions map[string]*partitionWindow
}

// partitionWindow is the fetch-ordered window of uncommitted offsets of
// one partition.
type partitionWindow struct {
	offsets []int64
	acked   map[int64]bool
}

// NewQueueClient creates a queue client reading one topic as the given
// consumer group.
func NewQueueClient(brokers []string, topic, groupID string) *QueueClient {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})

	return &QueueClient{
		reader:     reader,
		commit:     reader.CommitMessages,
		pending:    make(map[string]kafkago.Message),
		partitions: make(map[string]*partitionWindow),
	}
}

// Receive fetches up to maxMessages messages, waiting at most waitSeconds
// for the first one. Returns an empty slice when the wait elapses with
// nothing to read.
func (c *QueueClient) Receive(
	ctx context.Context,
	maxMessages int,
	waitSeconds int,
) ([]ports.QueueMessage, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, time.Duration(waitSeconds)*time.Second)
	defer cancel()

	messages := make([]ports.QueueMessage, 0, maxMessages)
	for len(messages) < maxMessages {
		msg, err := c.reader.FetchMessage(fetchCtx)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) && fetchCtx.Err() != nil && ctx.Err() == nil {
				break
			}
			if len(messages) > 0 {
				break
			}
			return nil, err
		}

		handle := c.track(msg)

		messages = append(messages, ports.QueueMessage{
			ID:            strconv.FormatInt(msg.Offset, 10),
			Body:          msg.Value,
			ReceiptHandle: handle,
		})
	}

	return messages, nil
}

// track registers a fetched message as pending and appends its offset to
// the partition window. Returns the message's receipt handle.
func (c *QueueClient) track(msg kafkago.Message) string {
	handle := receiptHandle(msg.Topic, msg.Partition, msg.Offset)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending[handle] = msg

	key := partitionKey(msg.Topic, msg.Partition)
	window, ok := c.partitions[key]
	if !ok {
		window = &partitionWindow{acked: make(map[int64]bool)}
		c.partitions[key] = window
	}
	window.offsets = append(window.offsets, msg.Offset)

	return handle
}

// Delete acknowledges the message identified by the receipt handle. The
// commit advances only through the acknowledged prefix of the partition's
// window; an acknowledgment above an unacknowledged offset is held back
// until that offset is acknowledged too.
func (c *QueueClient) Delete(ctx context.Context, handle string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	msg, ok := c.pending[handle]
	if !ok {
		return errs.NewObjectNotFoundError("receiptHandle", handle)
	}

	window := c.partitions[partitionKey(msg.Topic, msg.Partition)]
	window.acked[msg.Offset] = true

	committable := 0
	for _, offset := range window.offsets {
		if !window.acked[offset] {
			break
		}
		committable++
	}
	if committable == 0 {
		return nil
	}

	last := window.offsets[committable-1]
	err := c.commit(ctx, kafkago.Message{
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    last,
	})
	if err != nil {
		return err
	}

	for _, offset := range window.offsets[:committable] {
		delete(window.acked, offset)
		delete(c.pending, receiptHandle(msg.Topic, msg.Partition, offset))
	}
	window.offsets = window.offsets[committable:]

	return nil
}

// Close shuts down the underlying reader.
func (c *QueueClient) Close() error {
	return c.reader.Close()
}

func receiptHandle(topic string, partition int, offset int64) string {
	return fmt.Sprintf("%s/%d/%d", topic, partition, offset)
}

func partitionKey(topic string, partition int) string {
	return fmt.Sprintf("%s/%d", topic, partition)
}
