package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

// watch reopens the channel whenever the parent connection reconnects.
func (ch *Channel) watch(reconnect <-chan struct{}) {
	for range reconnect {
		ch.mu.Lock()
		if ch.closed {
			ch.mu.Unlock()
			return
		}

		ch.conn.mu.RLock()
		conn := ch.conn.conn
		ch.conn.mu.RUnlock()

		newCh, err := conn.Channel()
		if err != nil {
			ch.mu.Unlock()
			continue
		}
		ch.channel = newCh

		subs := make([]chan struct{}, len(ch.reconnectSubs))
		copy(subs, ch.reconnectSubs)
		ch.mu.Unlock()

		for _, sub := range subs {
			select {
			case sub <- struct{}{}:
			default:
			}
		}
	}
}

func (ch *Channel) current() (*amqp.Channel, error) {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	if ch.closed {
		return nil, ErrChannelClosed
	}
	return ch.channel, nil
}

// ExchangeDeclare declares an exchange.
func (ch *Channel) ExchangeDeclare(args ExchangeArgs) error {
	c, err := ch.current()
	if err != nil {
		return err
	}
	return c.ExchangeDeclare(args.Name, args.Type, args.Durable, args.AutoDelete, args.Internal, args.NoWait, nil)
}

// QueueDeclare declares a queue.
func (ch *Channel) QueueDeclare(args QueueArgs) (amqp.Queue, error) {
	c, err := ch.current()
	if err != nil {
		return amqp.Queue{}, err
	}
	return c.QueueDeclare(args.Name, args.Durable, args.AutoDelete, args.Exclusive, args.NoWait, nil)
}

// QueueBind binds a queue to an exchange.
func (ch *Channel) QueueBind(args QueueBindArgs) error {
	c, err := ch.current()
	if err != nil {
		return err
	}
	return c.QueueBind(args.QueueName, args.RoutingKey, args.ExchangeName, args.NoWait, nil)
}

// Publish publishes a message.
func (ch *Channel) Publish(ctx context.Context, args PublishArgs) error {
	c, err := ch.current()
	if err != nil {
		return err
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return c.PublishWithContext(pubCtx, args.Exchange, args.RoutingKey, args.Mandatory, args.Immediate, args.Msg)
}

// Consume starts delivering messages from a queue.
func (ch *Channel) Consume(args ConsumeArgs) (<-chan amqp.Delivery, error) {
	c, err := ch.current()
	if err != nil {
		return nil, err
	}
	return c.Consume(args.QueueName, args.Consumer, args.AutoAck, args.Exclusive, args.NoLocal, args.NoWait, nil)
}

// Close closes the channel and stops the reopen watcher.
func (ch *Channel) Close() error {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.closed {
		return nil
	}
	ch.closed = true
	return ch.channel.Close()
}

// NotifyReconnect returns a channel signalled after the channel is reopened.
func (ch *Channel) NotifyReconnect() <-chan struct{} {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	sub := make(chan struct{}, 1)
	ch.reconnectSubs = append(ch.reconnectSubs, sub)
	return sub
}
