// FILE: internal/service/publisher_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"template-catalog-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (s *publisherService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return s.pubSub.Publish(s.topicName, msg)
}

// publishCatalogChange notifies the audit consumer about a successful
// mutation. Auxiliary: failures are logged, never returned to the caller.
func publishCatalogChange(ctx context.Context, publisher IPublisherService, entityName, action string, entityId uint64) {
	if publisher == nil {
		return
	}
	msgPayload := dto.CatalogChangedMessage{
		EventId:  uuid.New(),
		Entity:   entityName,
		Action:   action,
		EntityId: entityId,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		fmt.Printf("[WARN] Failed to marshal catalog change event: %v\n", err)
		return
	}
	if err := publisher.Publish(ctx, msgJson); err != nil {
		fmt.Printf("[WARN] Failed to publish catalog change event: %v\n", err)
	}
}
