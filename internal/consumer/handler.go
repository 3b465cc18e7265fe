package consumer

import (
	"context"
	"errors"

	"voice-srv/config"
	analysisKafka "voice-srv/internal/analysis/delivery/kafka"
	analysisConsumer "voice-srv/internal/analysis/delivery/kafka/consumer"
	analysisProducer "voice-srv/internal/analysis/delivery/kafka/producer"
	"voice-srv/internal/analysis/repository"
	analysisFile "voice-srv/internal/analysis/repository/file"
	analysisMinio "voice-srv/internal/analysis/repository/minio"
	analysisPostgre "voice-srv/internal/analysis/repository/postgre"
	analysisRedis "voice-srv/internal/analysis/repository/redis"
	analysisUC "voice-srv/internal/analysis/usecase"

	"github.com/IBM/sarama"
)

// domainConsumers holds the handlers and topics each domain consumes.
type domainConsumers struct {
	analysisHandler *analysisConsumer.Handler
	analysisTopics  []string
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	// Corpus source: local directory or MinIO bucket prefix
	var corpusRepo repository.CorpusRepository
	if srv.config.Corpus.Source == config.SourceMinIO {
		corpusRepo = analysisMinio.NewCorpusRepository(srv.l, srv.minioClient, srv.config.Corpus.Prefix)
	} else {
		corpusRepo = analysisFile.NewCorpusRepository(srv.l, srv.config.Corpus.Dir)
	}

	profileRepo := analysisRedis.NewProfileCache(
		srv.l,
		srv.redisClient,
		analysisFile.NewProfileRepository(srv.l, srv.config.Profile.Path),
	)

	runRepo := analysisPostgre.NewRunRepository(srv.l, srv.postgresDB)

	producer := analysisProducer.New(srv.l, srv.kafkaProducer)

	uc := analysisUC.New(srv.l, corpusRepo, profileRepo, runRepo, producer)

	srv.l.Infof(ctx, "Analysis domain initialized")

	return &domainConsumers{
		analysisHandler: analysisConsumer.New(srv.l, uc),
		analysisTopics:  []string{analysisKafka.TopicAnalysisJobs},
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) {
	// Surface consumer group errors in the log
	go func() {
		for err := range srv.kafkaConsumer.Errors() {
			srv.l.Errorf(ctx, "Kafka consumer group error: %v", err)
		}
	}()

	// Consume blocks per session; re-invoke to survive rebalances
	go func() {
		var handler sarama.ConsumerGroupHandler = consumers.analysisHandler
		for {
			if err := srv.kafkaConsumer.ConsumeWithContext(ctx, consumers.analysisTopics, handler); err != nil {
				if errors.Is(err, sarama.ErrClosedConsumerGroup) {
					return
				}
				srv.l.Errorf(ctx, "Kafka consume session ended with error: %v", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	srv.l.Infof(ctx, "All consumers started successfully")
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context) {
	if err := srv.kafkaConsumer.Close(); err != nil {
		srv.l.Errorf(ctx, "Error closing Kafka consumer: %v", err)
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
