package kafka

import "github.com/IBM/sarama"

// Config holds Kafka producer configuration.
type Config struct {
	Brokers []string
	Topic   string
}

// ConsumerConfig holds Kafka consumer group configuration.
type ConsumerConfig struct {
	Brokers []string
	GroupID string
}

// producerImpl implements IProducer over a sarama sync producer.
type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

// consumerImpl implements IConsumer over a sarama consumer group.
type consumerImpl struct {
	group sarama.ConsumerGroup
}
