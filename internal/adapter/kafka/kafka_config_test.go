package kafka

import (
	"testing"
	"time"

	"github.com/IBM/sarama"
)

func TestGroupConfig(t *testing.T) {
	t.Run("configured dial timeout is applied", func(t *testing.T) {
		cfg := groupConfig("order-service", 2*time.Second)
		if cfg.Net.DialTimeout != 2*time.Second {
			t.Fatalf("dial timeout = %v", cfg.Net.DialTimeout)
		}
		if cfg.ClientID != "order-service" {
			t.Fatalf("client id = %q", cfg.ClientID)
		}
	})

	t.Run("zero falls back to the default", func(t *testing.T) {
		cfg := groupConfig("order-service", 0)
		if cfg.Net.DialTimeout != defaultDialTimeout {
			t.Fatalf("dial timeout = %v", cfg.Net.DialTimeout)
		}
		if cfg.Consumer.Offsets.Initial != sarama.OffsetNewest {
			t.Fatalf("initial offset = %v", cfg.Consumer.Offsets.Initial)
		}
	})
}
