// FILE: internal/service/consumer_service.go
// Audit trail consumer for catalog change events.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"template-catalog-be/internal/dto"
	"template-catalog-be/internal/pkg/logger"
	"template-catalog-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    logger,
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
	var payload dto.CatalogChangedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("audit", "Failed to unmarshal catalog change message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads are not retriable
		return
	}

	evt := events.BaseEvent{
		Type: fmt.Sprintf("CATALOG_%s_%s", strings.ToUpper(payload.Entity), strings.ToUpper(payload.Action)),
		Data: map[string]interface{}{
			"event_id":  payload.EventId.String(),
			"entity":    payload.Entity,
			"action":    payload.Action,
			"entity_id": payload.EntityId,
		},
		OccurredAt: time.Now(),
	}

	cs.logger.Info("audit", evt.EventType(), evt.Payload())
	msg.Ack()
}
