package local

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveDelete(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := NewStore(dir, "/static/uploads/")
	require.NoError(t, err)

	ctx := context.Background()

	uri, err := s.Save(ctx, "abc.png", strings.NewReader("png-bytes"), 9, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/abc.png", uri)

	raw, err := os.ReadFile(filepath.Join(dir, "abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(raw))

	require.NoError(t, s.Delete(ctx, uri))
	_, err = os.Stat(filepath.Join(dir, "abc.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	// Already gone and foreign URIs are not errors.
	require.NoError(t, s.Delete(ctx, uri))
	require.NoError(t, s.Delete(ctx, "https://cdn.example/abc.png"))
}

func TestStoreSaveDoesNotEscapeDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dir := filepath.Join(root, "uploads")
	s, err := NewStore(dir, "/u/")
	require.NoError(t, err)

	uri, err := s.Save(context.Background(), "../evil.gif", strings.NewReader("x"), 1, "image/gif")
	require.NoError(t, err)
	assert.Equal(t, "/u/evil.gif", uri)

	_, err = os.Stat(filepath.Join(root, "evil.gif"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = os.Stat(filepath.Join(dir, "evil.gif"))
	assert.NoError(t, err)
}

func TestStoreSaveRefusesOverwrite(t *testing.T) {
	t.Parallel()

	s, err := NewStore(t.TempDir(), "/u/")
	require.NoError(t, err)

	ctx := context.Background()
	_, err = s.Save(ctx, "same.jpg", strings.NewReader("1"), 1, "image/jpeg")
	require.NoError(t, err)

	_, err = s.Save(ctx, "same.jpg", strings.NewReader("2"), 1, "image/jpeg")
	assert.Error(t, err)
}
