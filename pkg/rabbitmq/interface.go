package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

// IConnection defines the interface for a RabbitMQ connection.
type IConnection interface {
	Channel() (IChannel, error)
	IsClosed() bool
	Close() error
	// NotifyReconnect returns a channel that receives a signal after each
	// successful reconnection.
	NotifyReconnect() <-chan struct{}
}

// IChannel defines the interface for a RabbitMQ channel.
type IChannel interface {
	ExchangeDeclare(args ExchangeArgs) error
	QueueDeclare(args QueueArgs) (amqp.Queue, error)
	QueueBind(args QueueBindArgs) error
	Publish(ctx context.Context, args PublishArgs) error
	Consume(args ConsumeArgs) (<-chan amqp.Delivery, error)
	Close() error
	// NotifyReconnect returns a channel that receives a signal after the
	// channel has been reopened on a new connection.
	NotifyReconnect() <-chan struct{}
}

// Connect dials the broker and starts the reconnection watcher.
func Connect(cfg Config) (IConnection, error) {
	if cfg.URL == "" {
		return nil, ErrURLRequired
	}
	return newConnection(cfg.URL)
}
