package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/platform/logger"
)

type OrderRepository interface {
	Create(ctx context.Context, ord *model.Order) (string, error)
	OrderByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, filter model.OrdersFilter) ([]*model.Order, int64, error)
	Delete(ctx context.Context, id string) error
}

// ProductStock is the part of the catalog store a sale touches.
type ProductStock interface {
	ProductByID(ctx context.Context, id string) (*model.Product, error)
	ApplySale(ctx context.Context, id string, qty int64, now time.Time) (int64, error)
	RestoreSale(ctx context.Context, id string, qty int64, now time.Time) error
}

type SaleEventSender interface {
	SendSale(ctx context.Context, event model.SaleEvent) error
}

type service struct {
	repo           OrderRepository
	stock          ProductStock
	events         SaleEventSender
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewOrderService(
	repository OrderRepository,
	stock ProductStock,
	events SaleEventSender,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		stock:          stock,
		events:         events,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// AddOrder records a sale in two steps: the order snapshot is inserted, then
// stock is reduced (clamped at zero) and total_sold raised by the full
// quantity. When the stock update fails the inserted order is removed again.
func (svc *service) AddOrder(ctx context.Context, params model.AddOrderParams) (*model.AddOrderResult, error) {
	const op string = "order.service.AddOrder"

	params.ProductID = strings.TrimSpace(params.ProductID)
	log := logger.With(
		logger.String("product_id", params.ProductID),
		logger.String("added_by", params.AddedBy),
	)

	if params.ProductID == "" {
		return nil, fmt.Errorf("%s: %w", op, model.Required("product_id"))
	}

	qty := model.DefaultQuantitySold
	if params.QuantitySold != nil {
		qty = *params.QuantitySold
	}
	if qty < 1 {
		return nil, fmt.Errorf("%s: %w", op, model.Invalid("quantity_sold", "must be at least 1"))
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	product, err := svc.stock.ProductByID(rdbCtx, params.ProductID)
	if err != nil {
		log.Error(ctx, "repository product by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	salePrice := product.Price
	if params.SalePrice != nil {
		salePrice = *params.SalePrice
	}

	now := time.Now().UTC()

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	orderID, err := svc.repo.Create(wdbCtx, &model.Order{
		ProductID:    params.ProductID,
		ProductTitle: product.Title,
		ProductImage: product.Thumbnail(),
		QuantitySold: qty,
		SalePrice:    salePrice,
		Account:      params.Account,
		EbayOrderID:  params.EbayOrderID,
		BuyerName:    params.BuyerName,
		Note:         params.Note,
		AddedBy:      params.AddedBy,
		CreatedAt:    now,
	})
	if err != nil {
		log.Error(ctx, "repository create order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	log = log.With(logger.String("order_id", orderID))

	stockCtx, stockCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer stockCancel()

	newQty, err := svc.stock.ApplySale(stockCtx, params.ProductID, qty, now)
	if err != nil {
		log.Error(ctx, "repository apply sale", logger.ErrorF(err))
		svc.compensate(ctx, log, orderID)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	svc.publish(ctx, log, model.SaleEvent{
		EventID:     uuid.New(),
		Type:        model.SaleRecorded,
		OrderID:     orderID,
		ProductID:   params.ProductID,
		Quantity:    qty,
		SalePrice:   salePrice,
		NewQuantity: newQty,
		Actor:       params.AddedBy,
		OccurredAt:  now,
	})

	return &model.AddOrderResult{
		OrderID:     orderID,
		NewQuantity: newQty,
		QtyReduced:  qty,
	}, nil
}

// compensate deletes an order whose stock update failed. It must outlive a
// cancelled request context.
func (svc *service) compensate(ctx context.Context, log *logger.Logger, orderID string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Delete(ctx, orderID); err != nil && !errors.Is(err, model.ErrNotFound) {
		log.Error(ctx, "compensating delete of order", logger.ErrorF(err))
		return
	}
	log.Warn(ctx, "order rolled back after failed stock update")
}

func (svc *service) ListOrders(ctx context.Context, filter model.OrdersFilter) (*model.OrderPage, error) {
	const op string = "order.service.ListOrders"

	filter.ProductID = strings.TrimSpace(filter.ProductID)
	filter.Page = filter.Page.Normalize()

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	items, total, err := svc.repo.List(ctx, filter)
	if err != nil {
		logger.Error(ctx, "repository list orders",
			logger.String("product_id", filter.ProductID),
			logger.ErrorF(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.OrderPage{Items: items, Total: total}, nil
}

// DeleteOrder puts the sold quantity back on the product, then deletes the
// order. A product that is gone or unreadable does not block the delete.
func (svc *service) DeleteOrder(ctx context.Context, id string) (*model.DeleteOrderResult, error) {
	const op string = "order.service.DeleteOrder"
	log := logger.With(logger.String("order_id", id))

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	ord, err := svc.repo.OrderByID(rdbCtx, id)
	if err != nil {
		log.Error(ctx, "repository order by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	log = log.With(
		logger.String("product_id", ord.ProductID),
		logger.Int64("quantity_sold", ord.QuantitySold),
	)

	now := time.Now().UTC()

	stockCtx, stockCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer stockCancel()

	if err := svc.stock.RestoreSale(stockCtx, ord.ProductID, ord.QuantitySold, now); err != nil {
		log.Warn(ctx, "restore stock skipped", logger.ErrorF(err))
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.repo.Delete(wdbCtx, id); err != nil {
		log.Error(ctx, "repository delete order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	svc.publish(ctx, log, model.SaleEvent{
		EventID:    uuid.New(),
		Type:       model.SaleReversed,
		OrderID:    id,
		ProductID:  ord.ProductID,
		Quantity:   ord.QuantitySold,
		SalePrice:  ord.SalePrice,
		Actor:      ord.AddedBy,
		OccurredAt: now,
	})

	return &model.DeleteOrderResult{QtyRestored: ord.QuantitySold}, nil
}

func (svc *service) publish(ctx context.Context, log *logger.Logger, event model.SaleEvent) {
	if err := svc.events.SendSale(ctx, event); err != nil {
		log.Warn(ctx, "publish sale event",
			logger.String("event_type", string(event.Type)),
			logger.ErrorF(err),
		)
	}
}
