package apikeys

import "time"

// Key is a long-lived bearer token tied to one account. Value is unique
// across all keys; ExpiresAt drives the storage layer's TTL sweep, and
// because that sweep lags, readers filter by it themselves.
type Key struct {
	UserEmail string    `dynamodbav:"user_email"`
	Value     string    `dynamodbav:"value"`
	CreatedAt time.Time `dynamodbav:"created_at,unixtime"`
	ExpiresAt int64     `dynamodbav:"expires_at"`
}

// Expired reports whether the key is past its TTL as of now.
func (k *Key) Expired(now time.Time) bool {
	return now.Unix() >= k.ExpiresAt
}
