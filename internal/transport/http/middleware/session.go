package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/response"
	"github.com/you-humble/autoparts-inventory/platform/logger"
)

type identityKey struct{}

type IdentityResolver interface {
	CurrentIdentity(ctx context.Context, token string) (*model.Identity, error)
}

type Authorizer interface {
	Authorize(id *model.Identity, c model.Capability) error
}

// Session resolves the session cookie, when present, and stores the identity
// in the request context. Requests without a valid session pass through
// anonymous; Guard decides whether that is acceptable.
func Session(resolver IdentityResolver, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(cookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := resolver.CurrentIdentity(r.Context(), c.Value)
			switch {
			case err == nil:
				ctx := WithIdentity(r.Context(), id)
				ctx = logger.ToContext(ctx, logger.String("user_id", id.UserID))
				next.ServeHTTP(w, r.WithContext(ctx))
			case errors.Is(err, model.ErrUnauthenticated):
				next.ServeHTTP(w, r)
			default:
				response.Error(w, r, err)
			}
		})
	}
}

func WithIdentity(ctx context.Context, id *model.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns nil for anonymous requests.
func IdentityFromContext(ctx context.Context) *model.Identity {
	id, _ := ctx.Value(identityKey{}).(*model.Identity)
	return id
}

type Guard struct {
	authz Authorizer
}

func NewGuard(authz Authorizer) *Guard {
	return &Guard{authz: authz}
}

// Authenticated rejects anonymous requests.
func (g *Guard) Authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IdentityFromContext(r.Context()) == nil {
			response.Error(w, r, model.ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Require rejects the request unless its identity holds capability c.
func (g *Guard) Require(c model.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := g.authz.Authorize(IdentityFromContext(r.Context()), c); err != nil {
				response.Error(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
