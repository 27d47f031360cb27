// Package verifications manages short-lived email verification codes:
// issuing a single outstanding 6-digit code per address and checking
// submitted codes against it.
package verifications

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/climatechart/server/internal/common"
	"github.com/climatechart/server/internal/logging"
)

var (
	// ErrAlreadySent means an unexpired code for the address is still
	// outstanding. A user-facing no-op, not an RPC failure.
	ErrAlreadySent = errors.New("verification code already sent")

	// ErrCodeMismatch means the submitted code does not match the stored one.
	ErrCodeMismatch = errors.New("verification code mismatch")
)

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
		logger: logger.With("module", "verifications"),
		now:    time.Now,
	}
}

// Issue generates and persists a fresh code for email. While a live code
// exists the call fails with ErrAlreadySent. Two concurrent issues for the
// same address can both pass the pre-check; the storage layer's conditional
// insert decides the loser, which surfaces as ErrAlreadySent as well.
func (l *Ledger) Issue(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := l.repo.Get(ctx, email)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return "", err
	}
	if err == nil && !existing.Expired(l.now()) {
		return "", ErrAlreadySent
	}

	code, err := generateCode()
	if err != nil {
		return "", common.ErrInternal
	}

	now := l.now()
	record := &Code{
		Email:     email,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(l.ttl).Unix(),
	}

	if err := l.repo.Put(ctx, record); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			l.logger.Warn(ctx, "lost issue race, code already stored", "email", email)
			return "", ErrAlreadySent
		}
		l.logger.Error(ctx, "storing verification code failed", "email", email, "error", err)
		return "", err
	}

	return code, nil
}

// Confirm checks a submitted code. A record past its TTL behaves as absent
// even if the storage sweep has not collected it yet. The record is not
// consumed on success: a second confirm before expiry also succeeds.
func (l *Ledger) Confirm(ctx context.Context, email, submitted string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	record, err := l.repo.Get(ctx, email)
	if err != nil {
		return err
	}
	if record.Expired(l.now()) {
		return common.ErrNotFound
	}
	if record.Code != strings.TrimSpace(submitted) {
		return ErrCodeMismatch
	}
	return nil
}

// generateCode draws a uniformly random 6-digit code, leading zeros kept.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
