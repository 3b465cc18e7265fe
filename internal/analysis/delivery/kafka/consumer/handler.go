package consumer

import (
	"context"
	"encoding/json"

	"voice-srv/internal/analysis"

	"github.com/IBM/sarama"
)

// Setup implements sarama.ConsumerGroupHandler.
func (h *Handler) Setup(session sarama.ConsumerGroupSession) error {
	h.l.Infof(session.Context(), "analysis.delivery.consumer.Setup: member %s joined", session.MemberID())
	return nil
}

// Cleanup implements sarama.ConsumerGroupHandler.
func (h *Handler) Cleanup(session sarama.ConsumerGroupSession) error {
	h.l.Infof(session.Context(), "analysis.delivery.consumer.Cleanup: member %s leaving", session.MemberID())
	return nil
}

// ConsumeClaim processes job messages sequentially. Failed runs are marked
// consumed as well; the failure is recorded on the run row and the results
// topic, not retried here.
func (h *Handler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case <-session.Context().Done():
			return nil
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			h.handleMessage(session.Context(), message)
			session.MarkMessage(message, "")
		}
	}
}

func (h *Handler) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) {
	var msg analysis.JobMessage
	if err := json.Unmarshal(message.Value, &msg); err != nil {
		h.l.Errorf(ctx, "analysis.delivery.consumer.handleMessage: malformed job at %s/%d/%d: %v",
			message.Topic, message.Partition, message.Offset, err)
		return
	}

	if err := h.uc.ExecuteRun(ctx, msg); err != nil {
		h.l.Errorf(ctx, "analysis.delivery.consumer.handleMessage: run %s failed: %v", msg.RunID, err)
		return
	}
	h.l.Infof(ctx, "analysis.delivery.consumer.handleMessage: run %s completed", msg.RunID)
}
