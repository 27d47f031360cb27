package common

// Metadata keys consumed by the auth gate. Matching is case-insensitive on
// the wire; gRPC normalizes incoming metadata keys to lowercase.
const (
	// APIKeyHeaderName carries the bearer API key.
	APIKeyHeaderName = "x-api-key"

	// UserEmailHeaderName identifies the account the API key belongs to.
	UserEmailHeaderName = "x-user-email"
)
