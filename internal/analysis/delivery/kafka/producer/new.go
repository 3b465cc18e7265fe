package producer

import (
	"voice-srv/internal/analysis"
	pkgKafka "voice-srv/pkg/kafka"
	"voice-srv/pkg/log"
)

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

var _ analysis.Producer = &implProducer{}

// New publishes analysis messages through the shared Kafka producer.
func New(l log.Logger, producer pkgKafka.IProducer) analysis.Producer {
	return &implProducer{l: l, producer: producer}
}
