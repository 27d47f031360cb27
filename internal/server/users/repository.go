package users

import (
	"context"
)

type Repository interface {
	// Create persists a new user. Returns common.ErrAlreadyExists when an
	// account with the same email is already stored.
	Create(ctx context.Context, user *User) error

	// GetByEmail returns common.ErrNotFound when no record exists.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// MarkEmailVerified flips email_verified on the stored record.
	// Returns common.ErrNotFound when no record exists.
	MarkEmailVerified(ctx context.Context, email string) error
}
