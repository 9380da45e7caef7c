package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// store keeps uploads as plain files under dir and serves them under
// urlPrefix (see the /static/uploads/ file server).
type store struct {
	dir       string
	urlPrefix string
}

func NewStore(dir, urlPrefix string) (*store, error) {
	const op = "storage.local.NewStore"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &store{dir: dir, urlPrefix: urlPrefix}, nil
}

func (s *store) Save(ctx context.Context, name string, body io.Reader, _ int64, _ string) (string, error) {
	const op = "storage.local.Save"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	name = filepath.Base(name)
	dst := filepath.Join(s.dir, name)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("%s: write: %w", op, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("%s: close: %w", op, err)
	}

	return s.urlPrefix + name, nil
}

// Delete removes the file behind uri. URIs outside urlPrefix and files that
// are already gone are ignored.
func (s *store) Delete(_ context.Context, uri string) error {
	const op = "storage.local.Delete"

	name, ok := strings.CutPrefix(uri, s.urlPrefix)
	if !ok || name == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
