package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const defaultDialTimeout = 5 * time.Second

func NewGroup(brokers []string, groupID string, dialTimeout time.Duration) (sarama.ConsumerGroup, error) {
	return sarama.NewConsumerGroup(brokers, groupID, groupConfig(groupID, dialTimeout))
}

func groupConfig(groupID string, dialTimeout time.Duration) *sarama.Config {
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}
	cfg := sarama.NewConfig()
	cfg.ClientID = groupID
	cfg.Version = sarama.V2_6_0_0
	cfg.Consumer.Group.Rebalance.Strategy = sarama.BalanceStrategyRange
	cfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	cfg.Net.DialTimeout = dialTimeout
	return cfg
}
