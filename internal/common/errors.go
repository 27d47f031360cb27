// Package common contains shared constants and sentinel errors used across
// ClimateChart server components. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrUnauthorized       = errors.New("unauthorized")
	ErrFailedPrecondition = errors.New("failed precondition")
	ErrInternal           = errors.New("internal error")

	// Infrastructure errors. Safe for the caller to retry.
	ErrUnavailable = errors.New("temporarily unavailable")
)
