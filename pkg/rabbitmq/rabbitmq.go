package rabbitmq

import (
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func newConnection(url string) (*Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	c := &Connection{
		url:  url,
		conn: conn,
		done: make(chan struct{}),
	}
	go c.watch()
	return c, nil
}

// watch blocks on the close notification of the current connection and
// redials until Close is called.
func (c *Connection) watch() {
	for {
		c.mu.RLock()
		conn := c.conn
		c.mu.RUnlock()

		closeCh := conn.NotifyClose(make(chan *amqp.Error, 1))
		select {
		case <-c.done:
			return
		case <-closeCh:
		}

		for {
			select {
			case <-c.done:
				return
			case <-time.After(reconnectDelay):
			}

			newConn, err := amqp.Dial(c.url)
			if err != nil {
				continue
			}

			c.mu.Lock()
			c.conn = newConn
			subs := make([]chan struct{}, len(c.reconnectSubs))
			copy(subs, c.reconnectSubs)
			c.mu.Unlock()

			for _, sub := range subs {
				select {
				case sub <- struct{}{}:
				default:
				}
			}
			break
		}
	}
}

// Channel opens a new channel on the connection.
func (c *Connection) Channel() (IChannel, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, ErrConnectionClosed
	}

	ch, err := c.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	wrapped := &Channel{conn: c, channel: ch}
	go wrapped.watch(c.subscribeReconnect())
	return wrapped, nil
}

// IsClosed reports whether Close has been called.
func (c *Connection) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// Close stops the reconnection watcher and closes the connection.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	close(c.done)
	return c.conn.Close()
}

// NotifyReconnect returns a channel signalled after each reconnection.
func (c *Connection) NotifyReconnect() <-chan struct{} {
	return c.subscribeReconnect()
}

func (c *Connection) subscribeReconnect() chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	sub := make(chan struct{}, 1)
	c.reconnectSubs = append(c.reconnectSubs, sub)
	return sub
}
