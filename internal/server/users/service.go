package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/climatechart/server/internal/common"
	"github.com/climatechart/server/internal/logging"
	"github.com/climatechart/server/internal/server/credentials"
	"github.com/google/uuid"
)

// NormalizeEmail lowercases and trims an address. Every path that touches
// the store goes through this, so email remains a stable join key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type Service struct {
	repo   Repository
	logger logging.Logger
}

func NewService(repo Repository, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With("module", "users"),
	}
}

// SignUp creates an account with freshly derived password material.
// Returns common.ErrAlreadyExists when the address is taken.
func (s *Service) SignUp(ctx context.Context, name, email, password string) (*User, error) {
	material, err := credentials.Hash(password)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &User{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        NormalizeEmail(email),
		PasswordHash: material.Hash,
		PasswordSalt: material.Salt,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Warn(ctx, "signup failed", "email", user.Email, "error", err)
		return nil, err
	}

	return user, nil
}

// Login verifies the password against the stored material. Unknown accounts
// and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, err
	}

	if !credentials.Verify(password, user.PasswordSalt, user.PasswordHash) {
		return nil, common.ErrUnauthorized
	}

	return user, nil
}

func (s *Service) FindByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetByEmail(ctx, NormalizeEmail(email))
}

// ConfirmEmail flips the verified flag for the account.
func (s *Service) ConfirmEmail(ctx context.Context, email string) error {
	return s.repo.MarkEmailVerified(ctx, NormalizeEmail(email))
}
