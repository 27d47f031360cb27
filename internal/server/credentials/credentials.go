// Package credentials turns plaintext passwords into a storable,
// comparison-safe form and verifies login attempts against it.
package credentials

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"github.com/climatechart/server/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize   = 16
	keyLength  = 32
	iterations = 100_000
)

// Material is the storable form of a password: a random salt and the
// PBKDF2-HMAC-SHA256 derived key, both base64-encoded.
type Material struct {
	Salt string
	Hash string
}

// Hash derives storage material for password using a fresh random salt.
func Hash(password string) (Material, error) {
	salt, err := common.RandBytes(saltSize)
	if err != nil {
		return Material{}, err
	}
	return Material{
		Salt: base64.StdEncoding.EncodeToString(salt),
		Hash: base64.StdEncoding.EncodeToString(derive(password, salt)),
	}, nil
}

// Verify re-derives the key for password with the stored salt and compares it
// to the stored hash in constant time. Malformed stored material verifies
// false rather than erroring: a record we cannot decode can never match.
func Verify(password, saltB64, hashB64 string) bool {
	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return false
	}
	expected, err := base64.StdEncoding.DecodeString(hashB64)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(derive(password, salt), expected) == 1
}

func derive(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)
}
