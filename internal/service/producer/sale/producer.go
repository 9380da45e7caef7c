package saleproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/platform/kafka"
)

const eventTypeHeader = "event_type"

type Converter interface {
	SaleEventToPayload(e model.SaleEvent) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewSaleProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

// SendSale publishes the event keyed by product id, so the events of one
// product stay ordered within a partition.
func (s *service) SendSale(ctx context.Context, event model.SaleEvent) error {
	payload, err := s.conv.SaleEventToPayload(event)
	if err != nil {
		return fmt.Errorf("converter sale_event_to_payload error: %w", err)
	}

	err = s.producer.Send(ctx, []byte(event.ProductID), payload, kafka.Header{
		Key:   eventTypeHeader,
		Value: []byte(event.Type),
	})
	if err != nil {
		return fmt.Errorf("producer to sales topic error: %w", err)
	}

	return nil
}
