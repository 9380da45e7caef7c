package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/autoparts-inventory/internal/model"
)

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	ok, legacy := VerifyPassword(hash, "s3cret")
	assert.True(t, ok)
	assert.False(t, legacy)

	ok, _ = VerifyPassword(hash, "wrong")
	assert.False(t, ok)
}

func TestVerifyLegacyPassword(t *testing.T) {
	t.Parallel()

	sum := sha256.Sum256([]byte("admin123"))
	legacyHash := hex.EncodeToString(sum[:])

	ok, legacy := VerifyPassword(legacyHash, "admin123")
	assert.True(t, ok)
	assert.True(t, legacy)

	ok, legacy = VerifyPassword(legacyHash, "admin124")
	assert.False(t, ok)
	assert.True(t, legacy)
}

func TestHashPasswordTooLong(t *testing.T) {
	t.Parallel()

	_, err := HashPassword(strings.Repeat("x", 100))
	assert.ErrorIs(t, err, model.ErrValidation)
}
