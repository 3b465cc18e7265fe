package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"voice-srv/internal/content"
	"voice-srv/pkg/log"
	pkgRabbitMQ "voice-srv/pkg/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
)

type implPublisher struct {
	l       log.Logger
	channel pkgRabbitMQ.IChannel
}

var _ content.GenerationPublisher = &implPublisher{}

// New opens a channel on the connection and declares the generation
// exchange.
func New(l log.Logger, conn pkgRabbitMQ.IConnection) (content.GenerationPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open generation channel: %w", err)
	}

	if err := channel.ExchangeDeclare(pkgRabbitMQ.ExchangeArgs{
		Name:    GenerationExchange,
		Type:    "topic",
		Durable: true,
	}); err != nil {
		return nil, fmt.Errorf("failed to declare generation exchange: %w", err)
	}

	return &implPublisher{l: l, channel: channel}, nil
}

// PublishArticulation hands an articulation payload to the generation worker.
func (p *implPublisher) PublishArticulation(ctx context.Context, payload content.ArticulationPayload) error {
	return p.publish(ctx, RoutingKeyArticulation, payload)
}

// PublishOptimization hands an optimization payload to the generation worker.
func (p *implPublisher) PublishOptimization(ctx context.Context, payload content.OptimizationPayload) error {
	return p.publish(ctx, RoutingKeyOptimization, payload)
}

func (p *implPublisher) publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode generation payload: %w", err)
	}

	if err := p.channel.Publish(ctx, pkgRabbitMQ.PublishArgs{
		Exchange:   GenerationExchange,
		RoutingKey: routingKey,
		Msg: amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	}); err != nil {
		p.l.Errorf(ctx, "content.delivery.rabbitmq.publish: %s: %v", routingKey, err)
		return err
	}

	p.l.Infof(ctx, "content.delivery.rabbitmq.publish: handed off %s", routingKey)
	return nil
}
