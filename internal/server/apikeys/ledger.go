// Package apikeys issues and looks up per-user API keys: random URL-safe
// bearer tokens with a 24-hour storage-enforced lifetime.
package apikeys

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/climatechart/server/internal/common"
	"github.com/climatechart/server/internal/logging"
)

// valueSize is the number of random bytes behind a key value; encoded
// without padding this yields a 43-character token.
const valueSize = 32

type Ledger struct {
	repo   Repository
	ttl    time.Duration
	logger logging.Logger
	now    func() time.Time
}

func NewLedger(repo Repository, ttl time.Duration, logger logging.Logger) *Ledger {
	return &Ledger{
		repo:   repo,
		ttl:    ttl,
		logger: logger.With("module", "apikeys"),
		now:    time.Now,
	}
}

// Create issues a fresh key for the account. Whether the account's email is
// verified is the calling handler's concern, not the ledger's. Repeated
// calls insert fresh records; Get always serves the newest. A value
// collision is astronomically unlikely but surfaces as
// common.ErrAlreadyExists rather than a crash.
func (l *Ledger) Create(ctx context.Context, userEmail string) (*Key, error) {
	userEmail = strings.ToLower(strings.TrimSpace(userEmail))

	raw, err := common.RandBytes(valueSize)
	if err != nil {
		return nil, common.ErrInternal
	}

	now := l.now()
	key := &Key{
		UserEmail: userEmail,
		Value:     base64.RawURLEncoding.EncodeToString(raw),
		CreatedAt: now,
		ExpiresAt: now.Add(l.ttl).Unix(),
	}

	if err := l.repo.Insert(ctx, key); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			l.logger.Warn(ctx, "api key value collision", "user_email", userEmail)
		} else {
			l.logger.Error(ctx, "storing api key failed", "user_email", userEmail, "error", err)
		}
		return nil, err
	}

	return key, nil
}

// Get returns the newest live key for the account. A key past its TTL is
// reported as common.ErrNotFound even when the storage sweep has not
// collected it yet.
func (l *Ledger) Get(ctx context.Context, userEmail string) (*Key, error) {
	key, err := l.repo.GetLatestByUserEmail(ctx, strings.ToLower(strings.TrimSpace(userEmail)))
	if err != nil {
		return nil, err
	}
	if key.Expired(l.now()) {
		return nil, common.ErrNotFound
	}
	return key, nil
}
