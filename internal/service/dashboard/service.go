package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/platform/logger"
)

type DashboardRepository interface {
	ProductStats(ctx context.Context) (model.ProductStats, error)
	OrderStats(ctx context.Context, since time.Time) (model.OrderStats, error)
	RecentProducts(ctx context.Context, limit int64) ([]model.RecentProduct, error)
	LowStockProducts(ctx context.Context, limit int64) ([]model.LowStockProduct, error)
	OutOfStockProducts(ctx context.Context, limit int64) ([]model.OutOfStockProduct, error)
	RecentOrders(ctx context.Context, limit int64) ([]model.RecentOrder, error)
}

type service struct {
	repo          DashboardRepository
	readDBTimeout time.Duration
}

func NewDashboardService(repository DashboardRepository, readDBTimeout time.Duration) *service {
	return &service{repo: repository, readDBTimeout: readDBTimeout}
}

// Stats recomputes every aggregate on each call. The queries are independent
// and run concurrently; the first failure cancels the rest.
func (svc *service) Stats(ctx context.Context, now time.Time) (*model.Dashboard, error) {
	const op string = "dashboard.service.Stats"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	var out model.Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.Products, err = svc.repo.ProductStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Orders, err = svc.repo.OrderStats(gctx, now.Add(-model.RecentWindow))
		return err
	})
	g.Go(func() (err error) {
		out.RecentProducts, err = svc.repo.RecentProducts(gctx, model.RecentProductsLimit)
		return err
	})
	g.Go(func() (err error) {
		out.LowStockList, err = svc.repo.LowStockProducts(gctx, model.LowStockListLimit)
		return err
	})
	g.Go(func() (err error) {
		out.OutOfStockList, err = svc.repo.OutOfStockProducts(gctx, model.OutOfStockListLimit)
		return err
	})
	g.Go(func() (err error) {
		out.RecentOrderList, err = svc.repo.RecentOrders(gctx, model.RecentOrdersLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "dashboard aggregates", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}
