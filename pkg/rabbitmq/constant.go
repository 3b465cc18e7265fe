package rabbitmq

import "time"

const (
	// reconnectDelay is the wait between reconnection attempts.
	reconnectDelay = 5 * time.Second
	// publishTimeout bounds a single publish confirmation.
	publishTimeout = 10 * time.Second
)
