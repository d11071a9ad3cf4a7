package ports

import "context"

// QueueMessage is a raw message fetched from an inbound queue. Body carries
// the payload as received, possibly wrapped in a broker envelope the consumer
// is expected to unwrap. ReceiptHandle identifies the delivery for Delete.
type QueueMessage struct {
	ID            string
	Body          []byte
	ReceiptHandle string
}

// QueueClient is a polling consumer contract. Receive blocks up to
// waitSeconds for at most maxMessages messages and may return an empty slice.
// Delete acknowledges a single delivery; a message that is never deleted is
// redelivered by the broker.
type QueueClient interface {
	Receive(ctx context.Context, maxMessages int, waitSeconds int) ([]QueueMessage, error)
	Delete(ctx context.Context, receiptHandle string) error
}
