package envconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	SessionBackendRedis = "redis"
	SessionBackendJWT   = "jwt"
)

type sessionEnv struct {
	Backend      string        `env:"SESSION_BACKEND" envDefault:"redis"`
	TTL          time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	CookieName   string        `env:"SESSION_COOKIE_NAME" envDefault:"autoparts_session"`
	CookieSecure bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
	Secret       string        `env:"SESSION_SECRET"`
	KeyPrefix    string        `env:"SESSION_KEY_PREFIX" envDefault:"autoparts:session:"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

type session struct {
	raw sessionEnv
}

func NewSessionConfig() (*session, error) {
	var raw sessionEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	switch raw.Backend {
	case SessionBackendRedis:
	case SessionBackendJWT:
		if raw.Secret == "" {
			return nil, fmt.Errorf("SESSION_SECRET is required for the %q backend", raw.Backend)
		}
	default:
		return nil, fmt.Errorf("unknown SESSION_BACKEND %q", raw.Backend)
	}

	return &session{raw: raw}, nil
}

func (cfg *session) Backend() string       { return cfg.raw.Backend }
func (cfg *session) TTL() time.Duration    { return cfg.raw.TTL }
func (cfg *session) CookieName() string    { return cfg.raw.CookieName }
func (cfg *session) CookieSecure() bool    { return cfg.raw.CookieSecure }
func (cfg *session) Secret() []byte        { return []byte(cfg.raw.Secret) }
func (cfg *session) KeyPrefix() string     { return cfg.raw.KeyPrefix }
func (cfg *session) RedisAddr() string     { return cfg.raw.RedisAddr }
func (cfg *session) RedisPassword() string { return cfg.raw.RedisPassword }
func (cfg *session) RedisDB() int          { return cfg.raw.RedisDB }
