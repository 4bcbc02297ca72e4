package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"crowlands-be/internal/dto"
	"crowlands-be/internal/entity"
	"crowlands-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
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
	var payload dto.GenerationEventMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal generation event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	event := &entity.GenerationEvent{
		Id:          uuid.New(),
		UserId:      payload.UserId,
		SessionId:   payload.SessionId,
		ArchetypeId: payload.ArchetypeId,
		ParseError:  payload.ParseError,
		ImageMade:   payload.ImageMade,
		LatencyMs:   payload.LatencyMs,
		CreatedAt:   time.Now(),
	}

	if err := uow.GenerationEventRepository().Create(ctx, event); err != nil {
		log.Printf("[ERROR] Failed to persist generation event: %v", err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
