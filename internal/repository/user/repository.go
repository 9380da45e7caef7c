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

type repository struct {
	coll *mongo.Collection
}

func NewUserRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

// EnsureIndexes declares the unique email index the duplicate check relies on.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return err
}

func (r *repository) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	const op = "repository.user.UserByEmail"

	var ent UserEntity
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) UserByID(ctx context.Context, id string) (*model.User, error) {
	const op = "repository.user.UserByID"

	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrInvalidID
	}

	var ent UserEntity
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) List(ctx context.Context) ([]*model.User, error) {
	const op = "repository.user.List"

	cur, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Warn(ctx, "failed to close cursor",
				logger.String("op", op),
				logger.ErrorF(cerr),
			)
		}
	}()

	out := make([]*model.User, 0)
	for cur.Next(ctx) {
		var ent UserEntity
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

func (r *repository) Create(ctx context.Context, u *model.User) (string, error) {
	const op = "repository.user.Create"

	ent, err := EntityFromModel(u)
	if err != nil {
		return "", err
	}
	if ent.CreatedAt.IsZero() {
		ent.CreatedAt = time.Now().UTC()
	}

	res, err := r.coll.InsertOne(ctx, ent)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", model.ErrDuplicateEmail
		}
		return "", fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("%s: unexpected inserted id type %T", op, res.InsertedID)
	}

	return oid.Hex(), nil
}

func (r *repository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const op = "repository.user.UpdatePassword"

	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrInvalidID
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{"password": passwordHash},
	})
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}
