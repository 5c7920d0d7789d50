package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/eslib/lending-service/pkg/kafka"
)

type recordActivity func(ctx context.Context, event kafka.EventLending) error

type Consumer struct {
	activityHandler recordActivity
	log             *zap.Logger
}

func NewConsumer(activity recordActivity, log *zap.Logger) *Consumer {
	return &Consumer{
		activityHandler: activity,
		log:             log.Named("consumer"),
	}
}

// Setup runs at the start of every session, including after a group
// rebalance, so it must stay safe to call repeatedly.
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	consumer.log.Debug("session setup")
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
			var event kafka.EventLending
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.activityHandler(context.Background(), event); err != nil {
				consumer.log.Error("consumer.activityHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
