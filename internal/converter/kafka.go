package converter

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/you-humble/autoparts-inventory/internal/model"
)

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

// SaleEventToPayload encodes the event as a protobuf Struct so consumers can
// decode it without a generated schema.
func (c *kafkaConverter) SaleEventToPayload(e model.SaleEvent) ([]byte, error) {
	pb, err := structpb.NewStruct(map[string]any{
		"event_uuid":   e.EventID.String(),
		"event_type":   string(e.Type),
		"order_id":     e.OrderID,
		"product_id":   e.ProductID,
		"quantity":     e.Quantity,
		"sale_price":   e.SalePrice,
		"new_quantity": e.NewQuantity,
		"actor":        e.Actor,
		"occurred_at":  e.OccurredAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build protobuf struct: %w", err)
	}

	payload, err := proto.Marshal(pb)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal protobuf: %w", err)
	}

	return payload, nil
}
