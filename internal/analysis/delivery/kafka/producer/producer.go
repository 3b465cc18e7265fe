package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"voice-srv/internal/analysis"
	"voice-srv/internal/analysis/delivery/kafka"
)

// PublishJob enqueues a run on the jobs topic, keyed by run id so retries of
// the same run stay on one partition.
func (p *implProducer) PublishJob(ctx context.Context, msg analysis.JobMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode job message: %w", err)
	}

	if err := p.producer.PublishToTopic(kafka.TopicAnalysisJobs, []byte(msg.RunID.String()), data); err != nil {
		p.l.Errorf(ctx, "analysis.delivery.kafka.PublishJob: %v", err)
		return err
	}
	p.l.Infof(ctx, "analysis.delivery.kafka.PublishJob: enqueued run %s", msg.RunID)
	return nil
}

// PublishResult announces a finished run on the results topic.
func (p *implProducer) PublishResult(ctx context.Context, msg analysis.ResultMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode result message: %w", err)
	}

	if err := p.producer.PublishToTopic(kafka.TopicAnalysisResults, []byte(msg.RunID.String()), data); err != nil {
		p.l.Errorf(ctx, "analysis.delivery.kafka.PublishResult: %v", err)
		return err
	}
	return nil
}
