package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/you-humble/autoparts-inventory/internal/model"
)

// DefaultPassword is given to accounts created without one.
const DefaultPassword = "pass123"

const legacyHashLen = sha256.Size * 2

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", model.Invalid("password", "must be at most 72 bytes")
		}
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword checks plain against a stored hash. Hashes written before
// the switch to bcrypt are unsalted hex SHA-256; for those, legacy is true so
// the caller can upgrade the stored hash.
func VerifyPassword(hash, plain string) (ok, legacy bool) {
	if isLegacyHash(hash) {
		sum := sha256.Sum256([]byte(plain))
		got := hex.EncodeToString(sum[:])
		return subtle.ConstantTimeCompare([]byte(got), []byte(hash)) == 1, true
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil, false
}

func isLegacyHash(hash string) bool {
	if len(hash) != legacyHashLen {
		return false
	}
	_, err := hex.DecodeString(hash)
	return err == nil
}
