package rabbitmq

import (
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Config holds RabbitMQ connection configuration.
type Config struct {
	URL string
}

// ExchangeArgs holds arguments for declaring an exchange.
type ExchangeArgs struct {
	Name       string
	Type       string
	Durable    bool
	AutoDelete bool
	Internal   bool
	NoWait     bool
}

// QueueArgs holds arguments for declaring a queue.
type QueueArgs struct {
	Name       string
	Durable    bool
	AutoDelete bool
	Exclusive  bool
	NoWait     bool
}

// QueueBindArgs holds arguments for binding a queue to an exchange.
type QueueBindArgs struct {
	QueueName    string
	ExchangeName string
	RoutingKey   string
	NoWait       bool
}

// PublishArgs holds arguments for publishing a message.
type PublishArgs struct {
	Exchange   string
	RoutingKey string
	Mandatory  bool
	Immediate  bool
	Msg        amqp.Publishing
}

// ConsumeArgs holds arguments for starting a consumer.
type ConsumeArgs struct {
	QueueName string
	Consumer  string
	AutoAck   bool
	Exclusive bool
	NoLocal   bool
	NoWait    bool
}

// Connection wraps an AMQP connection and transparently reconnects when the
// broker drops it.
type Connection struct {
	url  string
	conn *amqp.Connection

	mu     sync.RWMutex
	closed bool
	done   chan struct{}

	reconnectSubs []chan struct{}
}

// Channel wraps an AMQP channel bound to a Connection. When the underlying
// connection reconnects the channel is reopened and subscribers are notified.
type Channel struct {
	conn *Connection

	mu      sync.RWMutex
	channel *amqp.Channel
	closed  bool

	reconnectSubs []chan struct{}
}
