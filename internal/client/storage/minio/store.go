package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL is the base that, joined with bucket and object name, makes
	// the URI stored on products.
	PublicURL string
}

type store struct {
	client *miniogo.Client
	bucket string
	prefix string
}

// NewStore connects to MinIO and creates the bucket when it is missing.
func NewStore(ctx context.Context, cfg Config) (*store, error) {
	const op = "storage.minio.NewStore"

	client, err := miniogo.New(cfg.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: init client: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: check bucket: %w", op, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, miniogo.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("%s: create bucket: %w", op, err)
		}
	}

	return newStore(client, cfg), nil
}

func newStore(client *miniogo.Client, cfg Config) *store {
	return &store{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.TrimRight(cfg.PublicURL, "/") + "/" + cfg.Bucket + "/",
	}
}

func (s *store) Save(ctx context.Context, name string, body io.Reader, size int64, contentType string) (string, error) {
	const op = "storage.minio.Save"

	_, err := s.client.PutObject(ctx, s.bucket, name, body, size,
		miniogo.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", fmt.Errorf("%s: put object: %w", op, err)
	}

	return s.prefix + name, nil
}

// Delete removes the object behind uri. URIs from another store are ignored.
func (s *store) Delete(ctx context.Context, uri string) error {
	const op = "storage.minio.Delete"

	name, ok := strings.CutPrefix(uri, s.prefix)
	if !ok || name == "" {
		return nil
	}

	if err := s.client.RemoveObject(ctx, s.bucket, name, miniogo.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%s: remove object: %w", op, err)
	}

	return nil
}
