package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/platform/logger"
)

const adminName = "Admin"

type UserRepository interface {
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	UserByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Create(ctx context.Context, u *model.User) (string, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type SessionStore interface {
	Issue(ctx context.Context, id model.Identity) (string, error)
	Resolve(ctx context.Context, token string) (*model.Identity, error)
	Revoke(ctx context.Context, token string) error
}

type service struct {
	repo           UserRepository
	sessions       SessionStore
	policy         *Policy
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewAuthService(
	repository UserRepository,
	sessions SessionStore,
	policy *Policy,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		sessions:       sessions,
		policy:         policy,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) Authenticate(ctx context.Context, email, password string) (*model.Session, error) {
	const op string = "auth.service.Authenticate"
	email = normalizeEmail(email)
	log := logger.With(logger.String("email", email))

	if email == "" || password == "" {
		return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidCredentials)
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	u, err := svc.repo.UserByEmail(rdbCtx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			log.Info(ctx, "login for unknown email")
			return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidCredentials)
		}
		log.Error(ctx, "repository user by email", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ok, legacy := VerifyPassword(u.PasswordHash, password)
	if !ok {
		log.Info(ctx, "wrong password", logger.String("user_id", u.ID))
		return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidCredentials)
	}
	if legacy {
		svc.upgradeHash(ctx, u.ID, password)
	}

	id := model.Identity{UserID: u.ID, Name: u.Name, Role: u.Role}
	token, err := svc.sessions.Issue(ctx, id)
	if err != nil {
		log.Error(ctx, "session issue", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.Session{Token: token, Identity: id}, nil
}

// upgradeHash rewrites a legacy hash as bcrypt. A failure leaves the legacy
// hash in place; the login itself has already succeeded.
func (svc *service) upgradeHash(ctx context.Context, userID, password string) {
	log := logger.With(logger.String("user_id", userID))

	hash, err := HashPassword(password)
	if err != nil {
		log.Warn(ctx, "hash upgrade", logger.ErrorF(err))
		return
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.repo.UpdatePassword(wdbCtx, userID, hash); err != nil {
		log.Warn(ctx, "repository update password on hash upgrade", logger.ErrorF(err))
		return
	}
	log.Info(ctx, "legacy password hash upgraded")
}

// EndSession never fails: unknown tokens and store errors are only logged.
func (svc *service) EndSession(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := svc.sessions.Revoke(ctx, token); err != nil {
		logger.Warn(ctx, "session revoke", logger.ErrorF(err))
	}
}

func (svc *service) CurrentIdentity(ctx context.Context, token string) (*model.Identity, error) {
	const op string = "auth.service.CurrentIdentity"

	id, err := svc.sessions.Resolve(ctx, token)
	if err != nil {
		if !errors.Is(err, model.ErrUnauthenticated) {
			logger.Error(ctx, "session resolve", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (svc *service) Authorize(id *model.Identity, c model.Capability) error {
	if id == nil {
		return model.ErrUnauthenticated
	}
	if !svc.policy.Allows(id.Role, c) {
		return fmt.Errorf("%s %s: %w", id.Role, c, model.ErrForbidden)
	}
	return nil
}

func (svc *service) ListUsers(ctx context.Context) ([]*model.User, error) {
	const op string = "auth.service.ListUsers"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	users, err := svc.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list users", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, u := range users {
		u.PasswordHash = ""
	}

	return users, nil
}

func (svc *service) CreateUser(ctx context.Context, params model.CreateUserParams) (string, error) {
	const op string = "auth.service.CreateUser"

	params.Email = normalizeEmail(params.Email)
	params.Name = strings.TrimSpace(params.Name)
	log := logger.With(
		logger.String("email", params.Email),
		logger.String("role", string(params.Role)),
	)

	if params.Email == "" {
		return "", fmt.Errorf("%s: %w", op, model.Required("email"))
	}
	if params.Role == "" {
		params.Role = model.RoleUser
	}
	if !params.Role.Valid() {
		return "", fmt.Errorf("%s: %w", op, model.Invalid("role", "must be admin or user"))
	}
	if params.Password == "" {
		params.Password = DefaultPassword
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	_, err := svc.repo.UserByEmail(rdbCtx, params.Email)
	switch {
	case err == nil:
		log.Info(ctx, "email already registered")
		return "", fmt.Errorf("%s: %w", op, model.ErrDuplicateEmail)
	case !errors.Is(err, model.ErrNotFound):
		log.Error(ctx, "repository user by email", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	hash, err := HashPassword(params.Password)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	id, err := svc.repo.Create(wdbCtx, &model.User{
		Email:        params.Email,
		PasswordHash: hash,
		Name:         params.Name,
		Role:         params.Role,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		log.Error(ctx, "repository create user", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (svc *service) ChangePassword(ctx context.Context, params model.ChangePasswordParams) error {
	const op string = "auth.service.ChangePassword"
	log := logger.With(logger.String("user_id", params.UserID))

	if params.NewPassword == "" {
		return fmt.Errorf("%s: %w", op, model.Required("new_password"))
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	u, err := svc.repo.UserByID(rdbCtx, params.UserID)
	if err != nil {
		log.Error(ctx, "repository user by id", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if ok, _ := VerifyPassword(u.PasswordHash, params.OldPassword); !ok {
		log.Info(ctx, "wrong current password")
		return fmt.Errorf("%s: %w", op, model.ErrWrongPassword)
	}

	hash, err := HashPassword(params.NewPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.repo.UpdatePassword(wdbCtx, u.ID, hash); err != nil {
		log.Error(ctx, "repository update password", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SeedAdmin makes sure the bootstrap admin account exists.
func (svc *service) SeedAdmin(ctx context.Context, email, password string) error {
	const op string = "auth.service.SeedAdmin"

	_, err := svc.CreateUser(ctx, model.CreateUserParams{
		Email:    email,
		Password: password,
		Name:     adminName,
		Role:     model.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "admin account created", logger.String("email", normalizeEmail(email)))
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
