package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type mongoEnv struct {
	// URI wins over the individual connection parts when set.
	URI      string `env:"MONGO_URI"`
	Host     string `env:"MONGO_HOST" envDefault:"localhost"`
	Port     int    `env:"MONGO_PORT" envDefault:"27017"`
	User     string `env:"MONGO_INITDB_ROOT_USERNAME"`
	Password string `env:"MONGO_INITDB_ROOT_PASSWORD"`
	AuthDB   string `env:"MONGO_AUTH_DB" envDefault:"admin"`
	DBName   string `env:"MONGO_DATABASE,notEmpty" envDefault:"autoparts"`

	UsersCollection    string `env:"MONGO_USERS_COLLECTION,notEmpty" envDefault:"users"`
	ProductsCollection string `env:"MONGO_PRODUCTS_COLLECTION,notEmpty" envDefault:"products"`
	OrdersCollection   string `env:"MONGO_ORDERS_COLLECTION,notEmpty" envDefault:"orders"`
}

type mongo struct {
	raw mongoEnv
}

func NewMongoConfig() (*mongo, error) {
	var raw mongoEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &mongo{raw: raw}, nil
}

func (cfg *mongo) DatabaseName() string       { return cfg.raw.DBName }
func (cfg *mongo) UsersCollection() string    { return cfg.raw.UsersCollection }
func (cfg *mongo) ProductsCollection() string { return cfg.raw.ProductsCollection }
func (cfg *mongo) OrdersCollection() string   { return cfg.raw.OrdersCollection }

func (cfg *mongo) DSN() string {
	if cfg.raw.URI != "" {
		return cfg.raw.URI
	}

	if cfg.raw.User == "" {
		return fmt.Sprintf(
			"mongodb://%s:%d/%s",
			cfg.raw.Host,
			cfg.raw.Port,
			cfg.raw.DBName,
		)
	}

	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%d/%s?authSource=%s",
		cfg.raw.User,
		cfg.raw.Password,
		cfg.raw.Host,
		cfg.raw.Port,
		cfg.raw.DBName,
		cfg.raw.AuthDB,
	)
}
