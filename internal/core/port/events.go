package port

import "context"

// TaskPublisher publishes enrichment task messages to the broker
type TaskPublisher interface {
	Publish(ctx context.Context, data []byte) error
}

// EventConsumer is an interface to define a task consumer (nats, kafka, ...)
type EventConsumer interface {
	Subscribe(ctx context.Context, handler MessageService) error
	Close() error
}

// MessageService is an interface to define message handling
type MessageService interface {
	HandleMessage(ctx context.Context, data []byte) error
}
