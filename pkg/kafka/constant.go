package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

var (
	// KafkaVersion is the protocol version used for producers and consumers.
	KafkaVersion = sarama.V3_6_0_0
)

const (
	// ProducerRetryMax is the maximum number of publish retries.
	ProducerRetryMax = 3
	// ProducerTimeout bounds a single publish attempt.
	ProducerTimeout = 10 * time.Second
)
