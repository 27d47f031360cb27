package verifications

import "time"

// Code is a short-lived email verification record. ExpiresAt is the
// epoch-seconds attribute the storage layer's TTL sweeps on; since that
// sweep lags, readers must treat an expired-but-present record as absent.
type Code struct {
	Email     string    `dynamodbav:"email"`
	Code      string    `dynamodbav:"code"`
	CreatedAt time.Time `dynamodbav:"created_at,unixtime"`
	ExpiresAt int64     `dynamodbav:"expires_at"`
}

// Expired reports whether the record is past its TTL as of now.
func (c *Code) Expired(now time.Time) bool {
	return now.Unix() >= c.ExpiresAt
}
