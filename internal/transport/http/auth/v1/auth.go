package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/autoparts-inventory/internal/converter"
	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/dto"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/middleware"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/response"
)

type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*model.Session, error)
	EndSession(ctx context.Context, token string)
	ListUsers(ctx context.Context) ([]*model.User, error)
	CreateUser(ctx context.Context, params model.CreateUserParams) (string, error)
	ChangePassword(ctx context.Context, params model.ChangePasswordParams) error
}

type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

type handler struct {
	svc    AuthService
	cookie CookieConfig
}

func NewAuthHandler(service AuthService, cookie CookieConfig) *handler {
	return &handler{svc: service, cookie: cookie}
}

// RegisterPublic mounts the routes reachable without a session.
func (h *handler) RegisterPublic(r chi.Router) {
	r.Post("/auth/login", h.Login)
	r.Post("/auth/logout", h.Logout)
}

func (h *handler) Register(r chi.Router, guard *middleware.Guard) {
	r.With(guard.Authenticated).Get("/auth/me", h.Me)
	r.With(guard.Require(model.CapUsersRead)).Get("/auth/users", h.ListUsers)
	r.With(guard.Require(model.CapUsersWrite)).Post("/auth/users", h.CreateUser)
	r.With(guard.Require(model.CapAccountWrite)).Post("/auth/change-password", h.ChangePassword)
}

func (h *handler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	sess, err := h.svc.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    sess.Token,
		Path:     "/",
		MaxAge:   int(h.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	response.OK(w, r, dto.LoginResponse{
		Success: true,
		Name:    sess.Identity.Name,
		Role:    string(sess.Identity.Role),
	})
}

func (h *handler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(h.cookie.Name); err == nil && c.Value != "" {
		h.svc.EndSession(r.Context(), c.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(w, r)
}

func (h *handler) Me(w http.ResponseWriter, r *http.Request) {
	response.OK(w, r, converter.IdentityToMeResponse(middleware.IdentityFromContext(r.Context())))
}

func (h *handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.OK(w, r, converter.UsersToResponse(users))
}

func (h *handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	id, err := h.svc.CreateUser(r.Context(), converter.CreateUserRequestToParams(req))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.OK(w, r, dto.CreateUserResponse{Success: true, UserID: id})
}

func (h *handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ChangePasswordRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	err := h.svc.ChangePassword(r.Context(), model.ChangePasswordParams{
		UserID:      middleware.IdentityFromContext(r.Context()).UserID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.Success(w, r)
}
