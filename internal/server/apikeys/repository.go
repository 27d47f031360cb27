package apikeys

import "context"

type Repository interface {
	// Insert persists a new key. Returns common.ErrAlreadyExists when the
	// generated value collides with an existing key's value.
	Insert(ctx context.Context, key *Key) error

	// GetLatestByUserEmail returns the most recently created key for the
	// account, or common.ErrNotFound. Expired keys may still surface here;
	// callers filter by age.
	GetLatestByUserEmail(ctx context.Context, userEmail string) (*Key, error)
}
