package envconfig

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	ImageStoreLocal = "local"
	ImageStoreMinio = "minio"
)

type imageStoreEnv struct {
	Backend string `env:"IMAGE_STORE_BACKEND" envDefault:"local"`

	UploadDir       string `env:"UPLOAD_DIR" envDefault:"static/uploads"`
	UploadURLPrefix string `env:"UPLOAD_URL_PREFIX" envDefault:"/static/uploads/"`

	MinioEndpoint  string `env:"MINIO_ENDPOINT"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY"`
	MinioBucket    string `env:"MINIO_BUCKET" envDefault:"autoparts-images"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	MinioPublicURL string `env:"MINIO_PUBLIC_URL"`
}

type imageStore struct {
	raw imageStoreEnv
}

func NewImageStoreConfig() (*imageStore, error) {
	var raw imageStoreEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	switch raw.Backend {
	case ImageStoreLocal:
	case ImageStoreMinio:
		if raw.MinioEndpoint == "" {
			return nil, fmt.Errorf("MINIO_ENDPOINT is required for the %q backend", raw.Backend)
		}
	default:
		return nil, fmt.Errorf("unknown IMAGE_STORE_BACKEND %q", raw.Backend)
	}

	if !strings.HasSuffix(raw.UploadURLPrefix, "/") {
		raw.UploadURLPrefix += "/"
	}

	return &imageStore{raw: raw}, nil
}

func (cfg *imageStore) Backend() string         { return cfg.raw.Backend }
func (cfg *imageStore) UploadDir() string       { return cfg.raw.UploadDir }
func (cfg *imageStore) UploadURLPrefix() string { return cfg.raw.UploadURLPrefix }
func (cfg *imageStore) MinioEndpoint() string   { return cfg.raw.MinioEndpoint }
func (cfg *imageStore) MinioAccessKey() string  { return cfg.raw.MinioAccessKey }
func (cfg *imageStore) MinioSecretKey() string  { return cfg.raw.MinioSecretKey }
func (cfg *imageStore) MinioBucket() string     { return cfg.raw.MinioBucket }
func (cfg *imageStore) MinioUseSSL() bool       { return cfg.raw.MinioUseSSL }

// MinioPublicURL is the base of the URIs stored on products. It falls back
// to the endpoint itself.
func (cfg *imageStore) MinioPublicURL() string {
	if cfg.raw.MinioPublicURL != "" {
		return strings.TrimRight(cfg.raw.MinioPublicURL, "/")
	}

	scheme := "http"
	if cfg.raw.MinioUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, cfg.raw.MinioEndpoint)
}
