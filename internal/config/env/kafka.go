package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	// Empty Brokers disables sale event publishing.
	Brokers        []string `env:"KAFKA_BROKERS"`
	SalesTopicName string   `env:"SALES_TOPIC_NAME" envDefault:"autoparts.sales"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Enabled() bool      { return len(cfg.raw.Brokers) > 0 }
func (cfg *kafka) Brokers() []string  { return cfg.raw.Brokers }
func (cfg *kafka) SalesTopic() string { return cfg.raw.SalesTopicName }

func (cfg *kafka) SalesProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3

	return config
}
