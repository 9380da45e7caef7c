package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	localstore "github.com/you-humble/autoparts-inventory/internal/client/storage/local"
	miniostore "github.com/you-humble/autoparts-inventory/internal/client/storage/minio"
	"github.com/you-humble/autoparts-inventory/internal/config"
	envconfig "github.com/you-humble/autoparts-inventory/internal/config/env"
	"github.com/you-humble/autoparts-inventory/internal/converter"
	dashrepo "github.com/you-humble/autoparts-inventory/internal/repository/dashboard"
	orderrepo "github.com/you-humble/autoparts-inventory/internal/repository/order"
	productrepo "github.com/you-humble/autoparts-inventory/internal/repository/product"
	"github.com/you-humble/autoparts-inventory/internal/repository/session"
	userrepo "github.com/you-humble/autoparts-inventory/internal/repository/user"
	authsvc "github.com/you-humble/autoparts-inventory/internal/service/auth"
	dashsvc "github.com/you-humble/autoparts-inventory/internal/service/dashboard"
	ordersvc "github.com/you-humble/autoparts-inventory/internal/service/order"
	saleproducer "github.com/you-humble/autoparts-inventory/internal/service/producer/sale"
	productsvc "github.com/you-humble/autoparts-inventory/internal/service/product"
	authapi "github.com/you-humble/autoparts-inventory/internal/transport/http/auth/v1"
	dashapi "github.com/you-humble/autoparts-inventory/internal/transport/http/dashboard/v1"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/middleware"
	orderapi "github.com/you-humble/autoparts-inventory/internal/transport/http/order/v1"
	productapi "github.com/you-humble/autoparts-inventory/internal/transport/http/product/v1"
	"github.com/you-humble/autoparts-inventory/platform/closer"
	"github.com/you-humble/autoparts-inventory/platform/kafka"
	"github.com/you-humble/autoparts-inventory/platform/kafka/producer"
	"github.com/you-humble/autoparts-inventory/platform/logger"
)

type AuthService interface {
	authapi.AuthService
	middleware.IdentityResolver
	middleware.Authorizer
	SeedAdmin(ctx context.Context, email, password string) error
}

type OrderRepository interface {
	ordersvc.OrderRepository
	productsvc.OrderCascader
}

type ProductRepository interface {
	productsvc.ProductRepository
	ordersvc.ProductStock
}

type Handler interface {
	Register(r chi.Router, guard *middleware.Guard)
}

type AuthHandler interface {
	Handler
	RegisterPublic(r chi.Router)
}

type di struct {
	mongo *mongo.Client

	usersCollection    *mongo.Collection
	productsCollection *mongo.Collection
	ordersCollection   *mongo.Collection

	redis *redis.Client

	userRepository      authsvc.UserRepository
	productRepository   ProductRepository
	orderRepository     OrderRepository
	dashboardRepository dashsvc.DashboardRepository
	sessionStore        authsvc.SessionStore
	imageStore          productsvc.ImageStore

	syncProducer sarama.SyncProducer
	saleProducer kafka.Producer
	saleSender   ordersvc.SaleEventSender

	authService      AuthService
	productService   productapi.ProductService
	orderService     orderapi.OrderService
	dashboardService dashapi.DashboardService

	authHandler      AuthHandler
	productHandler   Handler
	orderHandler     Handler
	dashboardHandler Handler

	guard  *middleware.Guard
	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

// PingDB reports whether the primary answers; it backs the health endpoint.
func (d *di) PingDB(ctx context.Context) error {
	return d.MongoDB(ctx).Ping(ctx, readpref.Primary())
}

func (d *di) collection(ctx context.Context, name string) *mongo.Collection {
	return d.MongoDB(ctx).
		Database(config.C().Mongo.DatabaseName()).
		Collection(name)
}

func (d *di) UsersCollection(ctx context.Context) *mongo.Collection {
	if d.usersCollection == nil {
		d.usersCollection = d.collection(ctx, config.C().Mongo.UsersCollection())
	}

	return d.usersCollection
}

func (d *di) ProductsCollection(ctx context.Context) *mongo.Collection {
	if d.productsCollection == nil {
		d.productsCollection = d.collection(ctx, config.C().Mongo.ProductsCollection())
	}

	return d.productsCollection
}

func (d *di) OrdersCollection(ctx context.Context) *mongo.Collection {
	if d.ordersCollection == nil {
		d.ordersCollection = d.collection(ctx, config.C().Mongo.OrdersCollection())
	}

	return d.ordersCollection
}

func (d *di) Redis(ctx context.Context) *redis.Client {
	if d.redis == nil {
		cfg := config.C().Session

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.RedisPassword(),
			DB:       cfg.RedisDB(),
		})
		closer.AddNamed("Redis Client",
			func(ctx context.Context) error {
				return client.Close()
			})

		if err := client.Ping(ctx).Err(); err != nil {
			panic(fmt.Sprintf("failed to ping redis %s: %v\n", cfg.RedisAddr(), err))
		}

		d.redis = client
	}

	return d.redis
}

func (d *di) UserRepository(ctx context.Context) authsvc.UserRepository {
	if d.userRepository == nil {
		d.userRepository = userrepo.NewUserRepository(d.UsersCollection(ctx))
	}

	return d.userRepository
}

func (d *di) ProductRepository(ctx context.Context) ProductRepository {
	if d.productRepository == nil {
		d.productRepository = productrepo.NewProductRepository(d.ProductsCollection(ctx))
	}

	return d.productRepository
}

func (d *di) OrderRepository(ctx context.Context) OrderRepository {
	if d.orderRepository == nil {
		d.orderRepository = orderrepo.NewOrderRepository(d.OrdersCollection(ctx))
	}

	return d.orderRepository
}

func (d *di) DashboardRepository(ctx context.Context) dashsvc.DashboardRepository {
	if d.dashboardRepository == nil {
		d.dashboardRepository = dashrepo.NewDashboardRepository(
			d.ProductsCollection(ctx),
			d.OrdersCollection(ctx),
		)
	}

	return d.dashboardRepository
}

func (d *di) SessionStore(ctx context.Context) authsvc.SessionStore {
	if d.sessionStore == nil {
		cfg := config.C().Session

		switch cfg.Backend() {
		case envconfig.SessionBackendJWT:
			d.sessionStore = session.NewJWTStore(cfg.Secret(), cfg.TTL())
		default:
			d.sessionStore = session.NewRedisStore(d.Redis(ctx), cfg.KeyPrefix(), cfg.TTL())
		}
	}

	return d.sessionStore
}

func (d *di) ImageStore(ctx context.Context) productsvc.ImageStore {
	if d.imageStore == nil {
		cfg := config.C().ImageStore

		switch cfg.Backend() {
		case envconfig.ImageStoreMinio:
			s, err := miniostore.NewStore(ctx, miniostore.Config{
				Endpoint:  cfg.MinioEndpoint(),
				AccessKey: cfg.MinioAccessKey(),
				SecretKey: cfg.MinioSecretKey(),
				Bucket:    cfg.MinioBucket(),
				UseSSL:    cfg.MinioUseSSL(),
				PublicURL: cfg.MinioPublicURL(),
			})
			if err != nil {
				panic(fmt.Sprintf("failed to create minio image store: %v\n", err))
			}
			d.imageStore = s
		default:
			s, err := localstore.NewStore(cfg.UploadDir(), cfg.UploadURLPrefix())
			if err != nil {
				panic(fmt.Sprintf("failed to create local image store: %v\n", err))
			}
			d.imageStore = s
		}
	}

	return d.imageStore
}

func (d *di) SyncProducer(ctx context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.SalesProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

// SaleProducer publishes to Kafka when it is enabled and discards events
// otherwise.
func (d *di) SaleProducer(ctx context.Context) kafka.Producer {
	if d.saleProducer == nil {
		if !config.C().Kafka.Enabled() {
			d.saleProducer = producer.NewNoopProducer()
			return d.saleProducer
		}

		d.saleProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.SalesTopic(),
			logger.L(),
		)
	}

	return d.saleProducer
}

func (d *di) SaleSender(ctx context.Context) ordersvc.SaleEventSender {
	if d.saleSender == nil {
		d.saleSender = saleproducer.NewSaleProducer(
			d.SaleProducer(ctx),
			converter.NewKafkaConverter(),
		)
	}

	return d.saleSender
}

func (d *di) AuthService(ctx context.Context) AuthService {
	if d.authService == nil {
		d.authService = authsvc.NewAuthService(
			d.UserRepository(ctx),
			d.SessionStore(ctx),
			authsvc.NewPolicy(config.C().Auth.EnforceRoles()),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.authService
}

func (d *di) ProductService(ctx context.Context) productapi.ProductService {
	if d.productService == nil {
		d.productService = productsvc.NewProductService(
			d.ProductRepository(ctx),
			d.OrderRepository(ctx),
			d.ImageStore(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.productService
}

func (d *di) OrderService(ctx context.Context) orderapi.OrderService {
	if d.orderService == nil {
		d.orderService = ordersvc.NewOrderService(
			d.OrderRepository(ctx),
			d.ProductRepository(ctx),
			d.SaleSender(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.orderService
}

func (d *di) DashboardService(ctx context.Context) dashapi.DashboardService {
	if d.dashboardService == nil {
		d.dashboardService = dashsvc.NewDashboardService(
			d.DashboardRepository(ctx),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.dashboardService
}

func (d *di) AuthHandler(ctx context.Context) AuthHandler {
	if d.authHandler == nil {
		cfg := config.C().Session
		d.authHandler = authapi.NewAuthHandler(d.AuthService(ctx), authapi.CookieConfig{
			Name:   cfg.CookieName(),
			Secure: cfg.CookieSecure(),
			TTL:    cfg.TTL(),
		})
	}

	return d.authHandler
}

func (d *di) ProductHandler(ctx context.Context) Handler {
	if d.productHandler == nil {
		d.productHandler = productapi.NewProductHandler(d.ProductService(ctx))
	}

	return d.productHandler
}

func (d *di) OrderHandler(ctx context.Context) Handler {
	if d.orderHandler == nil {
		d.orderHandler = orderapi.NewOrderHandler(d.OrderService(ctx))
	}

	return d.orderHandler
}

func (d *di) DashboardHandler(ctx context.Context) Handler {
	if d.dashboardHandler == nil {
		d.dashboardHandler = dashapi.NewDashboardHandler(d.DashboardService(ctx))
	}

	return d.dashboardHandler
}

func (d *di) Guard(ctx context.Context) *middleware.Guard {
	if d.guard == nil {
		d.guard = middleware.NewGuard(d.AuthService(ctx))
	}

	return d.guard
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
