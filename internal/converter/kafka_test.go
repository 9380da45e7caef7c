package converter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/you-humble/autoparts-inventory/internal/model"
)

func TestSaleEventToPayload(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	e := model.SaleEvent{
		EventID:     uuid.New(),
		Type:        model.SaleRecorded,
		OrderID:     "65f0c0ffee0000000000aaaa",
		ProductID:   "65f0c0ffee0000000000bbbb",
		Quantity:    2,
		SalePrice:   19.99,
		NewQuantity: 3,
		Actor:       "Admin",
		OccurredAt:  at,
	}

	payload, err := NewKafkaConverter().SaleEventToPayload(e)
	require.NoError(t, err)

	var got structpb.Struct
	require.NoError(t, proto.Unmarshal(payload, &got))

	fields := got.AsMap()
	assert.Equal(t, e.EventID.String(), fields["event_uuid"])
	assert.Equal(t, "sale.recorded", fields["event_type"])
	assert.Equal(t, e.ProductID, fields["product_id"])
	assert.Equal(t, float64(2), fields["quantity"])
	assert.Equal(t, 19.99, fields["sale_price"])
	assert.Equal(t, float64(3), fields["new_quantity"])
	assert.Equal(t, "2025-01-02T03:04:05Z", fields["occurred_at"])
}
