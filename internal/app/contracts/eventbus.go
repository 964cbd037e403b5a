package contracts

import "context"

// EventPublisher pushes an integration event onto a durable queue. Payloads
// are marshalled to JSON before publishing.
type EventPublisher interface {
	Publish(ctx context.Context, queueName string, payload interface{}) error
}

// EventHandler processes one delivery. A nil return acknowledges the message,
// a non-nil return requeues it.
type EventHandler func(ctx context.Context, body []byte) error
