package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/platform/logger"
)

const TextIndexName = "product_text_search"

type repository struct {
	coll *mongo.Collection
}

func NewProductRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

// EnsureIndexes declares the full-text index used by Search and the
// created_at index used by every newest-first listing.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "part_name", Value: "text"},
				{Key: "part_number", Value: "text"},
				{Key: "car_make", Value: "text"},
				{Key: "car_model", Value: "text"},
				{Key: "car_year", Value: "text"},
				{Key: "description", Value: "text"},
			},
			Options: options.Index().SetName(TextIndexName),
		},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "ebay_links.url", Value: 1}}},
	}, options.CreateIndexes())

	return err
}

func (r *repository) Create(ctx context.Context, p *model.Product) (string, error) {
	const op = "repository.product.Create"

	ent, err := EntityFromModel(p)
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

func (r *repository) ProductByID(ctx context.Context, id string) (*model.Product, error) {
	const op = "repository.product.ProductByID"

	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrInvalidID
	}

	var ent ProductEntity
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) Search(ctx context.Context, q model.ProductQuery) ([]*model.Product, int64, error) {
	const op = "repository.product.Search"

	filter := BuildSearchFilter(q.Text)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%s count: %w: %w", op, model.ErrStore, err)
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(q.Page.Skip()).
		SetLimit(q.Page.PerPage),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}

	out, err := decodeAll(ctx, op, cur)
	if err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

func (r *repository) OwnerByLinkURL(ctx context.Context, url string) (*model.LinkOwner, error) {
	const op = "repository.product.OwnerByLinkURL"

	var ent linkOwnerEntity
	err := r.coll.FindOne(ctx,
		bson.M{"ebay_links.url": url},
		options.FindOne().SetProjection(bson.M{"title": 1, "part_name": 1, "images": 1}),
	).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}

	return linkOwnerToModel(&ent), nil
}

func (r *repository) Replace(ctx context.Context, id string, upd model.ReplaceProduct) error {
	const op = "repository.product.Replace"
	return r.updateByID(ctx, op, id, BuildReplaceUpdate(upd))
}

func (r *repository) Patch(ctx context.Context, id string, patch model.ProductPatch, now time.Time) error {
	const op = "repository.product.Patch"
	return r.updateByID(ctx, op, id, BuildPatchUpdate(patch, now))
}

func (r *repository) SetQuantity(ctx context.Context, id string, qty int64, now time.Time) error {
	const op = "repository.product.SetQuantity"
	return r.updateByID(ctx, op, id, bson.M{
		"$set": bson.M{"quantity": qty, "updated_at": now},
	})
}

func (r *repository) PushLink(ctx context.Context, id string, link model.EbayLink) error {
	const op = "repository.product.PushLink"
	return r.updateByID(ctx, op, id, bson.M{
		"$push": bson.M{"ebay_links": LinksFromModel([]model.EbayLink{link})[0]},
		"$set":  bson.M{"updated_at": link.AddedAt},
	})
}

func (r *repository) PullLink(ctx context.Context, id, url string, now time.Time) error {
	const op = "repository.product.PullLink"
	return r.updateByID(ctx, op, id, bson.M{
		"$pull": bson.M{"ebay_links": bson.M{"url": url}},
		"$set":  bson.M{"updated_at": now},
	})
}

// Delete removes the product and returns it so callers can clean up what it
// referenced.
func (r *repository) Delete(ctx context.Context, id string) (*model.Product, error) {
	const op = "repository.product.Delete"

	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrInvalidID
	}

	var ent ProductEntity
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}

	return EntityToModel(&ent), nil
}

// ApplySale reduces stock by qty, clamped at zero, and bumps total_sold by
// the full qty in a single server-side update. It returns the new quantity.
func (r *repository) ApplySale(ctx context.Context, id string, qty int64, now time.Time) (int64, error) {
	const op = "repository.product.ApplySale"

	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, model.ErrInvalidID
	}

	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"quantity": bson.M{"$max": bson.A{
				0,
				bson.M{"$subtract": bson.A{bson.M{"$ifNull": bson.A{"$quantity", 0}}, qty}},
			}},
			"total_sold": bson.M{"$add": bson.A{bson.M{"$ifNull": bson.A{"$total_sold", 0}}, qty}},
			"updated_at": now,
		}}},
	}

	var ent struct {
		Quantity int64 `bson:"quantity"`
	}
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, pipeline,
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(bson.M{"quantity": 1}),
	).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, model.ErrNotFound
		}
		return 0, fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}

	return ent.Quantity, nil
}

// RestoreSale puts qty back on stock and takes it off total_sold.
func (r *repository) RestoreSale(ctx context.Context, id string, qty int64, now time.Time) error {
	const op = "repository.product.RestoreSale"
	return r.updateByID(ctx, op, id, bson.M{
		"$inc": bson.M{"quantity": qty, "total_sold": -qty},
		"$set": bson.M{"updated_at": now},
	})
}

func (r *repository) updateByID(ctx context.Context, op, id string, update bson.M) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrInvalidID
	}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}

func decodeAll(ctx context.Context, op string, cur *mongo.Cursor) ([]*model.Product, error) {
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Warn(ctx, "failed to close cursor",
				logger.String("op", op),
				logger.ErrorF(cerr),
			)
		}
	}()

	out := make([]*model.Product, 0)
	for cur.Next(ctx) {
		var ent ProductEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w: %w", op, model.ErrStore, err)
		}
		out = append(out, EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w: %w", op, model.ErrStore, err)
	}

	return out, nil
}
