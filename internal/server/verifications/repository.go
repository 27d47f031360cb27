package verifications

import "context"

type Repository interface {
	// Put inserts a code record. The storage layer rejects the insert with
	// common.ErrAlreadyExists while an unexpired code for the same email is
	// still present, which is what makes two racing issues safe.
	Put(ctx context.Context, code *Code) error

	// Get returns the stored record for email, or common.ErrNotFound.
	// Expired records may still surface here; callers filter by age.
	Get(ctx context.Context, email string) (*Code, error)
}
