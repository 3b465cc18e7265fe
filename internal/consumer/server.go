package consumer

import (
	"context"
	"database/sql"

	"voice-srv/config"
	"voice-srv/pkg/discord"
	pkgKafka "voice-srv/pkg/kafka"
	"voice-srv/pkg/log"
	pkgMinio "voice-srv/pkg/minio"
	pkgRedis "voice-srv/pkg/redis"
)

// ConsumerServer is the Kafka consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l      log.Logger
	config *config.Config

	// Infrastructure clients
	postgresDB    *sql.DB
	redisClient   pkgRedis.IRedis
	minioClient   pkgMinio.IMinIO
	kafkaConsumer pkgKafka.IConsumer
	kafkaProducer pkgKafka.IProducer

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger log.Logger
	Config *config.Config

	// Infrastructure clients
	PostgresDB    *sql.DB
	RedisClient   pkgRedis.IRedis
	MinIOClient   pkgMinio.IMinIO
	KafkaConsumer pkgKafka.IConsumer
	KafkaProducer pkgKafka.IProducer

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	srv.startConsumers(ctx, consumers)

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
