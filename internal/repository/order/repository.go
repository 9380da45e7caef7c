package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/platform/logger"
)

type repository struct {
	coll *mongo.Collection
}

func NewOrderRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "product_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}, options.CreateIndexes())

	return err
}

func (r *repository) Create(ctx context.Context, ord *model.Order) (string, error) {
	const op = "repository.order.Create"

	ent, err := EntityFromModel(ord)
	if err != nil {
		return "", err
	}

	res, err := r.coll.InsertOne(ctx, ent)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("%s: unexpected inserted id type %T", op, res.InsertedID)
	}

	return oid.Hex(), nil
}

func (r *repository) OrderByID(ctx context.Context, id string) (*model.Order, error) {
	const op = "repository.order.OrderByID"

	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrInvalidID
	}

	var ent OrderEntity
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) List(ctx context.Context, filter model.OrdersFilter) ([]*model.Order, int64, error) {
	const op = "repository.order.List"

	q := BuildMongoFilter(filter)

	total, err := r.coll.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("%s count: %w: %w", op, model.ErrStore, err)
	}

	cur, err := r.coll.Find(ctx, q, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(filter.Page.Skip()).
		SetLimit(filter.Page.PerPage),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Warn(ctx, "failed to close cursor",
				logger.String("op", op),
				logger.ErrorF(cerr),
			)
		}
	}()

	out := make([]*model.Order, 0)
	for cur.Next(ctx) {
		var ent OrderEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, 0, fmt.Errorf("%s decode: %w: %w", op, model.ErrStore, err)
		}
		out = append(out, EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s cursor: %w: %w", op, model.ErrStore, err)
	}

	return out, total, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.order.Delete"

	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}

// DeleteByProductID removes every order recorded against productID and
// reports how many were removed.
func (r *repository) DeleteByProductID(ctx context.Context, productID string) (int64, error) {
	const op = "repository.order.DeleteByProductID"

	res, err := r.coll.DeleteMany(ctx, bson.M{"product_id": productID})
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}

	return res.DeletedCount, nil
}
