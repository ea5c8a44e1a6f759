package service

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"rag-support-be/internal/pkg/logger"
	"rag-support-be/pkg/corpus"
)

// IConsumerService drains the ingestion topic.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	ingestor  *corpus.Ingestor
	logger    logger.ILogger
}

var _ IConsumerService = &consumerService{}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, ingestor *corpus.Ingestor, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		ingestor:  ingestor,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	raw := string(msg.Payload)
	if raw == "" {
		cs.logger.Warn("ingest", "empty document payload, dropping", map[string]interface{}{
			"message_id": msg.UUID,
		})
		msg.Ack()
		return
	}

	indexed, err := cs.ingestor.Ingest(ctx, raw)
	if err != nil {
		cs.logger.Error("ingest", "document ingestion failed", map[string]interface{}{
			"message_id": msg.UUID,
			"indexed":    indexed,
			"error":      err.Error(),
		})
		msg.Nack() // transport failure, retry
		return
	}

	cs.logger.Info("ingest", "document ingested", map[string]interface{}{
		"message_id": msg.UUID,
		"chunks":     indexed,
	})
	msg.Ack()
}
