package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/platform/logger"
)

// thresholdExpr is the per-product low stock threshold, 3 when unset.
var thresholdExpr = bson.M{"$ifNull": bson.A{"$low_stock_threshold", model.DefaultLowStockThreshold}}

var lowStockExpr = bson.M{"$and": bson.A{
	bson.M{"$gt": bson.A{"$quantity", 0}},
	bson.M{"$lte": bson.A{"$quantity", thresholdExpr}},
}}

type repository struct {
	products *mongo.Collection
	orders   *mongo.Collection
}

func NewDashboardRepository(products, orders *mongo.Collection) *repository {
	return &repository{products: products, orders: orders}
}

// ProductStats computes product counters and inventory value in one pass.
func (r *repository) ProductStats(ctx context.Context) (model.ProductStats, error) {
	const op = "repository.dashboard.ProductStats"

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": 1},
			"out_of_stock": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$quantity", 0}}, 1, 0},
			}},
			"low_stock": bson.M{"$sum": bson.M{
				"$cond": bson.A{lowStockExpr, 1, 0},
			}},
			"value": bson.M{"$sum": bson.M{"$multiply": bson.A{
				bson.M{"$ifNull": bson.A{"$price", 0}},
				bson.M{"$ifNull": bson.A{"$quantity", 0}},
			}}},
		}}},
	}

	cur, err := r.products.Aggregate(ctx, pipeline)
	if err != nil {
		return model.ProductStats{}, fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}

	var rows []productStatsEntity
	if err := cur.All(ctx, &rows); err != nil {
		return model.ProductStats{}, fmt.Errorf("%s decode: %w: %w", op, model.ErrStore, err)
	}
	if len(rows) == 0 {
		return model.ProductStats{}, nil
	}

	return statsToModel(rows[0]), nil
}

func (r *repository) OrderStats(ctx context.Context, since time.Time) (model.OrderStats, error) {
	const op = "repository.dashboard.OrderStats"

	total, err := r.orders.CountDocuments(ctx, bson.M{})
	if err != nil {
		return model.OrderStats{}, fmt.Errorf("%s total: %w: %w", op, model.ErrStore, err)
	}

	recent, err := r.orders.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": since}})
	if err != nil {
		return model.OrderStats{}, fmt.Errorf("%s recent: %w: %w", op, model.ErrStore, err)
	}

	return model.OrderStats{TotalOrders: total, RecentOrders7d: recent}, nil
}

func (r *repository) RecentProducts(ctx context.Context, limit int64) ([]model.RecentProduct, error) {
	const op = "repository.dashboard.RecentProducts"

	rows, err := r.findSummaries(ctx, op, bson.M{}, limit, true)
	if err != nil {
		return nil, err
	}

	out := make([]model.RecentProduct, 0, len(rows))
	for _, row := range rows {
		out = append(out, recentProductToModel(row))
	}
	return out, nil
}

func (r *repository) LowStockProducts(ctx context.Context, limit int64) ([]model.LowStockProduct, error) {
	const op = "repository.dashboard.LowStockProducts"

	rows, err := r.findSummaries(ctx, op, bson.M{"$expr": lowStockExpr}, limit, false)
	if err != nil {
		return nil, err
	}

	out := make([]model.LowStockProduct, 0, len(rows))
	for _, row := range rows {
		out = append(out, lowStockToModel(row))
	}
	return out, nil
}

func (r *repository) OutOfStockProducts(ctx context.Context, limit int64) ([]model.OutOfStockProduct, error) {
	const op = "repository.dashboard.OutOfStockProducts"

	rows, err := r.findSummaries(ctx, op, bson.M{"quantity": 0}, limit, false)
	if err != nil {
		return nil, err
	}

	out := make([]model.OutOfStockProduct, 0, len(rows))
	for _, row := range rows {
		out = append(out, outOfStockToModel(row))
	}
	return out, nil
}

func (r *repository) RecentOrders(ctx context.Context, limit int64) ([]model.RecentOrder, error) {
	const op = "repository.dashboard.RecentOrders"

	cur, err := r.orders.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}

	var rows []recentOrderEntity
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("%s decode: %w: %w", op, model.ErrStore, err)
	}

	out := make([]model.RecentOrder, 0, len(rows))
	for _, row := range rows {
		out = append(out, recentOrderToModel(row))
	}
	return out, nil
}

// findSummaries projects products to the dashboard fields, computing
// link_count on the server so the links themselves are never shipped.
func (r *repository) findSummaries(
	ctx context.Context,
	op string,
	filter bson.M,
	limit int64,
	newestFirst bool,
) ([]productSummaryEntity, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
	}
	if newestFirst {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$project", Value: bson.M{
			"title":               1,
			"part_name":           1,
			"quantity":            1,
			"price":               1,
			"low_stock_threshold": 1,
			"images":              1,
			"link_count":          bson.M{"$size": bson.M{"$ifNull": bson.A{"$ebay_links", bson.A{}}}},
		}}},
	)

	cur, err := r.products.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}

	rows := make([]productSummaryEntity, 0)
	if err := cur.All(ctx, &rows); err != nil {
		logger.Warn(ctx, "decode product summaries",
			logger.String("op", op),
			logger.ErrorF(err),
		)
		return nil, fmt.Errorf("%s decode: %w: %w", op, model.ErrStore, err)
	}

	return rows, nil
}
