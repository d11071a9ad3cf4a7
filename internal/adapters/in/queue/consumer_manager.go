package queue

import (
	"context"
	"sync"
)

// ConsumerManager runs all queue consumers as background goroutines.
// Stop the consumers by cancelling the context passed to StartAll, then
// Wait for in-flight processing to finish.
type ConsumerManager struct {
	consumers []*Consumer
	wg        sync.WaitGroup
}

// NewConsumerManager creates a manager over the given consumers.
func NewConsumerManager(consumers ...*Consumer) *ConsumerManager {
	return &ConsumerManager{consumers: consumers}
}

// StartAll launches every consumer loop.
func (m *ConsumerManager) StartAll(ctx context.Context) {
	for _, consumer := range m.consumers {
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			consumer.Run(ctx)
		}()
	}
}

// Wait blocks until every consumer loop has returned.
func (m *ConsumerManager) Wait() {
	m.wg.Wait()
}
