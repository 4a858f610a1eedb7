package handler

import (
	"context"

	"github.com/Astemirdum/lending-service/pkg/kafka"
	"github.com/Astemirdum/lending-service/stats/internal/model"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type record func(ctx context.Context, event model.Event) error

type Consumer struct {
	recordHandler record
	log           *zap.Logger
}

func NewConsumer(record record, log *zap.Logger) *Consumer {
	return &Consumer{
		recordHandler: record,
		log:           log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			if err := consumer.handle(session.Context(), message); err != nil {
				// unmarked; the next session resumes from this message
				return err
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// handle drops undecodable messages. A failed record is returned so the
// message is not committed.
func (consumer *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) error {
	var event model.Event
	if err := kafka.Decode(message.Value, &event); err != nil {
		consumer.log.Error("decode event", zap.Error(err))
		return nil
	}
	event.Topic = message.Topic
	event.Partition = message.Partition
	event.Offset = message.Offset
	if err := consumer.recordHandler(ctx, event); err != nil {
		consumer.log.Error("consumer.recordHandler", zap.Error(err))
		return errors.Wrap(err, "record event")
	}
	consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
	return nil
}
