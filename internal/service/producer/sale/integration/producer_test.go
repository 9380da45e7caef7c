//go:build integration

package integration

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/you-humble/autoparts-inventory/internal/model"
)

func newSaleEvent(productID string, typ model.SaleEventType) model.SaleEvent {
	return model.SaleEvent{
		EventID:     uuid.New(),
		Type:        typ,
		OrderID:     gofakeit.UUID(),
		ProductID:   productID,
		Quantity:    int64(gofakeit.IntRange(1, 5)),
		SalePrice:   19.5,
		NewQuantity: int64(gofakeit.IntRange(0, 10)),
		Actor:       gofakeit.Name(),
		OccurredAt:  time.Now().UTC().Truncate(time.Millisecond),
	}
}

var _ = Describe("Sale producer", func() {
	It("publishes a recorded sale keyed by product with a decodable payload", func() {
		event := newSaleEvent(gofakeit.UUID(), model.SaleRecorded)

		By("sending the event")
		Expect(sales.SendSale(ctx, event)).To(Succeed())

		By("reading it back from the topic")
		msgs := receive(event.ProductID, 1)
		msg := msgs[0]
		Expect(header(msg, "event_type")).To(Equal(string(model.SaleRecorded)))

		var payload structpb.Struct
		Expect(proto.Unmarshal(msg.Value, &payload)).To(Succeed())

		fields := payload.AsMap()
		Expect(fields["event_uuid"]).To(Equal(event.EventID.String()))
		Expect(fields["event_type"]).To(Equal(string(model.SaleRecorded)))
		Expect(fields["order_id"]).To(Equal(event.OrderID))
		Expect(fields["product_id"]).To(Equal(event.ProductID))
		Expect(fields["quantity"]).To(BeNumerically("==", event.Quantity))
		Expect(fields["sale_price"]).To(BeNumerically("==", 19.5))
		Expect(fields["new_quantity"]).To(BeNumerically("==", event.NewQuantity))
		Expect(fields["actor"]).To(Equal(event.Actor))
		Expect(fields["occurred_at"]).To(Equal(event.OccurredAt.Format(time.RFC3339Nano)))
	})

	It("keeps the events of one product in order", func() {
		productID := gofakeit.UUID()
		recorded := newSaleEvent(productID, model.SaleRecorded)
		reversed := newSaleEvent(productID, model.SaleReversed)

		Expect(sales.SendSale(ctx, recorded)).To(Succeed())
		Expect(sales.SendSale(ctx, reversed)).To(Succeed())

		msgs := receive(productID, 2)
		Expect(header(msgs[0], "event_type")).To(Equal(string(model.SaleRecorded)))
		Expect(header(msgs[1], "event_type")).To(Equal(string(model.SaleReversed)))
		Expect(msgs[0].Offset).To(BeNumerically("<", msgs[1].Offset))
	})
})
