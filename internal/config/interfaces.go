package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	MaxBodyBytes() int64
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	DatabaseName() string
	UsersCollection() string
	ProductsCollection() string
	OrdersCollection() string
	DSN() string
}

type Session interface {
	Backend() string
	TTL() time.Duration
	CookieName() string
	CookieSecure() bool
	Secret() []byte
	KeyPrefix() string
	RedisAddr() string
	RedisPassword() string
	RedisDB() int
}

type Auth interface {
	AdminEmail() string
	AdminPassword() string
	EnforceRoles() bool
}

type ImageStore interface {
	Backend() string
	UploadDir() string
	UploadURLPrefix() string
	MinioEndpoint() string
	MinioAccessKey() string
	MinioSecretKey() string
	MinioBucket() string
	MinioUseSSL() bool
	MinioPublicURL() string
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	SalesTopic() string
	SalesProducerConfig() *sarama.Config
}
