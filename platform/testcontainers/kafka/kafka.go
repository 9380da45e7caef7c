package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
	"go.uber.org/zap"

	"github.com/you-humble/autoparts-inventory/platform/logger"
)

const (
	defaultImage     = "confluentinc/cp-kafka:7.6.1"
	defaultClusterID = "YXV0b3BhcnRzLXNhbGVzLWl0"

	adminTimeout = 10 * time.Second
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	ImageName   string
	ClusterID   string
	Customizers []testcontainers.ContainerCustomizer
	Logger      Logger
}

type Option func(*Config)

func WithImageName(image string) Option {
	return func(c *Config) {
		c.ImageName = image
	}
}

// WithCustomizers passes extra request options, such as a network
// attachment, to the kafka module.
func WithCustomizers(customizers ...testcontainers.ContainerCustomizer) Option {
	return func(c *Config) {
		c.Customizers = append(c.Customizers, customizers...)
	}
}

func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

type Container struct {
	container *tckafka.KafkaContainer
	brokers   []string
	cfg       *Config
}

// NewContainer starts a single-node KRaft broker and resolves its bootstrap
// addresses as seen from the host.
func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := &Config{
		ImageName: defaultImage,
		ClusterID: defaultClusterID,
		Logger:    &logger.NoopLogger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	customizers := append(
		[]testcontainers.ContainerCustomizer{tckafka.WithClusterID(cfg.ClusterID)},
		cfg.Customizers...,
	)

	container, err := tckafka.Run(ctx, cfg.ImageName, customizers...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start kafka container")
	}

	brokers, err := container.Brokers(ctx)
	if err != nil {
		if terr := container.Terminate(ctx); terr != nil {
			cfg.Logger.Error(ctx, "failed to terminate kafka container", zap.Error(terr))
		}
		return nil, errors.Wrap(err, "failed to get kafka brokers")
	}

	cfg.Logger.Info(ctx, "Kafka container started", zap.Strings("brokers", brokers))

	return &Container{
		container: container,
		brokers:   brokers,
		cfg:       cfg,
	}, nil
}

func (c *Container) Brokers() []string {
	return c.brokers
}

// CreateTopics creates single-partition topics; existing ones are left as is.
func (c *Container) CreateTopics(topics ...string) error {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V4_0_0_0
	cfg.Admin.Timeout = adminTimeout

	admin, err := sarama.NewClusterAdmin(c.brokers, cfg)
	if err != nil {
		return errors.Wrap(err, "failed to create kafka cluster admin")
	}
	defer func() { _ = admin.Close() }()

	for _, topic := range topics {
		err := admin.CreateTopic(topic, &sarama.TopicDetail{
			NumPartitions:     1,
			ReplicationFactor: 1,
		}, false)
		if err != nil && !errors.Is(err, sarama.ErrTopicAlreadyExists) {
			return errors.Wrapf(err, "failed to create topic %s", topic)
		}
	}

	return nil
}

func (c *Container) Terminate(ctx context.Context) error {
	if err := c.container.Terminate(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to terminate kafka container", zap.Error(err))
		return errors.Wrap(err, "failed to terminate kafka container")
	}

	c.cfg.Logger.Info(ctx, "Kafka container terminated")
	return nil
}
