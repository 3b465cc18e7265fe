package rabbitmq

import "errors"

var (
	ErrURLRequired      = errors.New("rabbitmq: connection URL is required")
	ErrConnectionClosed = errors.New("rabbitmq: connection is closed")
	ErrChannelClosed    = errors.New("rabbitmq: channel is closed")
)
