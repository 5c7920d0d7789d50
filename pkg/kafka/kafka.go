package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
)

const (
	LendingTopic       = "lending-events"
	StatsConsumerGroup = "lending-stats"
)

type Config struct {
	Addrs   []string `envconfig:"KAFKA_ADDRS"`
	Enabled bool     `envconfig:"KAFKA_ENABLED" default:"false"`
}

const (
	EventBorrowRequested = "borrow-requested"
	EventApproved        = "approved"
	EventRejected        = "rejected"
	EventReturnRequested = "return-requested"
	EventReturned        = "returned"
	EventReturnRejected  = "return-rejected"
)

// EventLending is published for every ledger transition.
type EventLending struct {
	Timestamp   time.Time `json:"timestamp"`
	RollNumber  string    `json:"rollNumber"`
	LendingID   string    `json:"lendingId"`
	ComponentID string    `json:"componentId"`
	Quantity    int       `json:"quantity"`
	EventType   string    `json:"eventType"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer group session loop until ctx is canceled.
func Consume(ctx context.Context, consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topic string) error {
	for {
		if err := consumer.Consume(ctx, []string{topic}, handler); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
