package messaging

import (
	"fmt"

	"github.com/IBM/sarama"
)

// ProducerConfig is the sarama configuration used for change events.
func ProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Partitioner = sarama.NewHashPartitioner
	return config
}

func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	const op = "messaging.NewSyncProducer"

	p, err := sarama.NewSyncProducer(brokers, ProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}
