package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/you-humble/autoparts-inventory/internal/model"
)

type identityEntity struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// redisStore keeps server-side sessions: opaque token -> identity, with TTL.
type redisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *redisStore {
	return &redisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *redisStore) Issue(ctx context.Context, id model.Identity) (string, error) {
	const op = "session.redis.Issue"

	payload, err := json.Marshal(identityEntity{
		UserID: id.UserID,
		Name:   id.Name,
		Role:   string(id.Role),
	})
	if err != nil {
		return "", fmt.Errorf("%s: marshal: %w", op, err)
	}

	token := uuid.NewString()
	if err := s.client.Set(ctx, s.key(token), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}

	return token, nil
}

func (s *redisStore) Resolve(ctx context.Context, token string) (*model.Identity, error) {
	const op = "session.redis.Resolve"

	if token == "" {
		return nil, model.ErrUnauthenticated
	}

	raw, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUnauthenticated
		}
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}

	var ent identityEntity
	if err := json.Unmarshal(raw, &ent); err != nil || ent.UserID == "" {
		return nil, model.ErrUnauthenticated
	}

	return &model.Identity{
		UserID: ent.UserID,
		Name:   ent.Name,
		Role:   model.Role(ent.Role),
	}, nil
}

func (s *redisStore) Revoke(ctx context.Context, token string) error {
	const op = "session.redis.Revoke"

	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}

	return nil
}

func (s *redisStore) key(token string) string { return s.prefix + token }
