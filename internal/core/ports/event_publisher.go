package ports

import "context"

// EventPublisher publishes a named event to the messaging infrastructure.
// Publishing is fire-and-forget from the domain's point of view, but a
// delivery failure must surface as an error so the calling use case can
// report it instead of silently losing the event.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}
