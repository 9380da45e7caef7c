//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/brianvoe/gofakeit/v7"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you-humble/autoparts-inventory/internal/converter"
	"github.com/you-humble/autoparts-inventory/internal/model"
	saleproducer "github.com/you-humble/autoparts-inventory/internal/service/producer/sale"
	"github.com/you-humble/autoparts-inventory/platform/kafka/producer"
	"github.com/you-humble/autoparts-inventory/platform/logger"
	tckafka "github.com/you-humble/autoparts-inventory/platform/testcontainers/kafka"
	tcnetwork "github.com/you-humble/autoparts-inventory/platform/testcontainers/network"
)

// ```bash
// go test -tags integration ./internal/service/producer/sale/integration/...
// ```

const (
	projectName = "autoparts_sales_integration"
	salesTopic  = "autoparts.sales"

	receiveTimeout = 15 * time.Second
)

type saleSender interface {
	SendSale(ctx context.Context, event model.SaleEvent) error
}

var (
	ctx context.Context

	net    *tcnetwork.Network
	kafkaC *tckafka.Container

	syncProducer sarama.SyncProducer
	consumer     sarama.Consumer
	sales        saleSender
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Autoparts Sales Producer Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()
	gofakeit.Seed(0)

	By("creating isolated docker network")
	var err error
	net, err = tcnetwork.NewNetwork(ctx, projectName)
	Expect(err).NotTo(HaveOccurred())

	By("starting kafka container")
	kafkaC, err = tckafka.NewContainer(ctx,
		tckafka.WithImageName("confluentinc/cp-kafka:7.6.1"),
		tckafka.WithCustomizers(net.Attach("kafka")),
		tckafka.WithLogger(logger.L()),
	)
	Expect(err).NotTo(HaveOccurred())

	By("creating the sales topic")
	Expect(kafkaC.CreateTopics(salesTopic)).To(Succeed())

	cfg := sarama.NewConfig()
	cfg.Version = sarama.V4_0_0_0
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Consumer.Return.Errors = true

	By("building the sale producer")
	syncProducer, err = sarama.NewSyncProducer(kafkaC.Brokers(), cfg)
	Expect(err).NotTo(HaveOccurred())

	sales = saleproducer.NewSaleProducer(
		producer.NewProducer(syncProducer, salesTopic, logger.L()),
		converter.NewKafkaConverter(),
	)

	consumer, err = sarama.NewConsumer(kafkaC.Brokers(), cfg)
	Expect(err).NotTo(HaveOccurred())
})

var _ = AfterSuite(func() {
	if consumer != nil {
		_ = consumer.Close()
	}
	if syncProducer != nil {
		_ = syncProducer.Close()
	}
	if kafkaC != nil {
		_ = kafkaC.Terminate(ctx)
	}
	if net != nil {
		_ = net.Remove(ctx)
	}
})

// receive reads the sales topic from the start and returns the first n
// messages keyed by key, in partition order.
func receive(key string, n int) []*sarama.ConsumerMessage {
	pc, err := consumer.ConsumePartition(salesTopic, 0, sarama.OffsetOldest)
	Expect(err).NotTo(HaveOccurred())
	defer func() { _ = pc.Close() }()

	out := make([]*sarama.ConsumerMessage, 0, n)
	timeout := time.After(receiveTimeout)
	for len(out) < n {
		select {
		case msg := <-pc.Messages():
			if string(msg.Key) == key {
				out = append(out, msg)
			}
		case err := <-pc.Errors():
			Fail("consume sales topic: " + err.Error())
		case <-timeout:
			Fail("timed out waiting for sale events of " + key)
		}
	}

	return out
}

func header(msg *sarama.ConsumerMessage, key string) string {
	for _, h := range msg.Headers {
		if string(h.Key) == key {
			return string(h.Value)
		}
	}
	return ""
}
