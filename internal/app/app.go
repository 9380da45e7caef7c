package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/autoparts-inventory/internal/config"
	envconfig "github.com/you-humble/autoparts-inventory/internal/config/env"
	orderrepo "github.com/you-humble/autoparts-inventory/internal/repository/order"
	productrepo "github.com/you-humble/autoparts-inventory/internal/repository/product"
	userrepo "github.com/you-humble/autoparts-inventory/internal/repository/user"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/health"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/middleware"
	"github.com/you-humble/autoparts-inventory/platform/closer"
	"github.com/you-humble/autoparts-inventory/platform/logger"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initIndexes,
		a.initAdmin,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initIndexes(ctx context.Context) error {
	ensure := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"users", func(ctx context.Context) error {
			return userrepo.EnsureIndexes(ctx, a.di.UsersCollection(ctx))
		}},
		{"products", func(ctx context.Context) error {
			return productrepo.EnsureIndexes(ctx, a.di.ProductsCollection(ctx))
		}},
		{"orders", func(ctx context.Context) error {
			return orderrepo.EnsureIndexes(ctx, a.di.OrdersCollection(ctx))
		}},
	}

	for _, e := range ensure {
		if err := e.fn(ctx); err != nil {
			logger.Error(ctx, "failed to ensure indexes",
				logger.String("collection", e.name),
				logger.ErrorF(err),
			)
			return fmt.Errorf("app.initIndexes %s: %w", e.name, err)
		}
	}
	return nil
}

// initAdmin makes sure the bootstrap administrator exists so a fresh
// database can be logged into.
func (a *app) initAdmin(ctx context.Context) error {
	cfg := config.C().Auth

	if err := a.di.AuthService(ctx).SeedAdmin(ctx, cfg.AdminEmail(), cfg.AdminPassword()); err != nil {
		logger.Error(ctx, "failed to seed admin user", logger.ErrorF(err))
		return err
	}
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	r := a.di.Router(ctx)
	r.Use(
		chimw.RequestID,
		chimw.RealIP,
		middleware.RequestLogger,
		chimw.Recoverer,
		chimw.RequestSize(cfg.Server.MaxBodyBytes()),
	)

	r.Get("/health", health.Handler(a.di.PingDB))

	if cfg.ImageStore.Backend() == envconfig.ImageStoreLocal {
		prefix := cfg.ImageStore.UploadURLPrefix()
		r.Handle(prefix+"*", http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.ImageStore.UploadDir()))))
	}

	guard := a.di.Guard(ctx)
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Session(a.di.AuthService(ctx), cfg.Session.CookieName()))

		a.di.AuthHandler(ctx).RegisterPublic(r)
		a.di.AuthHandler(ctx).Register(r, guard)
		a.di.ProductHandler(ctx).Register(r, guard)
		a.di.OrderHandler(ctx).Register(r, guard)
		a.di.DashboardHandler(ctx).Register(r, guard)
	})

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}
	closer.AddNamed("HTTP server", a.server.Shutdown)

	return nil
}

func (a *app) run(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 autoparts server listening",
			logger.String("address", config.C().Server.Address()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	<-egCtx.Done()
	logger.Info(ctx, "🛑 Server shutdown...")
	gracefulShutdown()

	return eg.Wait()
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
