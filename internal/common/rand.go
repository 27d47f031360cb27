package common

import "crypto/rand"

// RandBytes returns size cryptographically random bytes.
// It returns an error only if the system random source fails.
func RandBytes(size int) ([]byte, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
