package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/you-humble/autoparts-inventory/internal/model"
)

const issuer = "autoparts"

type claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// jwtStore issues stateless HS256 tokens carrying the identity itself.
// Revoke cannot invalidate a token server-side; the cookie is cleared by the
// transport and the token expires with its TTL.
type jwtStore struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTStore(secret []byte, ttl time.Duration) *jwtStore {
	return &jwtStore{secret: secret, ttl: ttl, now: time.Now}
}

func (s *jwtStore) Issue(_ context.Context, id model.Identity) (string, error) {
	const op = "session.jwt.Issue"

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Name: id.Name,
		Role: string(id.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%s: sign: %w", op, err)
	}

	return signed, nil
}

func (s *jwtStore) Resolve(_ context.Context, token string) (*model.Identity, error) {
	if token == "" {
		return nil, model.ErrUnauthenticated
	}

	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid || c.Subject == "" {
		return nil, model.ErrUnauthenticated
	}

	return &model.Identity{
		UserID: c.Subject,
		Name:   c.Name,
		Role:   model.Role(c.Role),
	}, nil
}

func (s *jwtStore) Revoke(context.Context, string) error { return nil }
