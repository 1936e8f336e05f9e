package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"chat-workspace-be/internal/dto"
	"chat-workspace-be/internal/pkg/logger"
	"chat-workspace-be/internal/repository/memory"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub           *gochannel.GoChannel
	topicName        string
	collectionsCache *memory.CollectionsCache
	sysLogger        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	collectionsCache *memory.CollectionsCache,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:           pubSub,
		topicName:        topicName,
		collectionsCache: collectionsCache,
		sysLogger:        sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.PublishCacheInvalidationMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.sysLogger.Error("ConsumerService", "Failed to unmarshal invalidation message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.sysLogger.Info("ConsumerService", "Invalidating shared collections cache", map[string]interface{}{
		"reason": payload.Reason,
	})
	cs.collectionsCache.Invalidate()
	msg.Ack()
}
