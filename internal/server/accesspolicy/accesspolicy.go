// Package accesspolicy decides, per gRPC method, which credentials a caller
// must present. Methods are classified by full name ("/user.UserService/Login")
// into public, API-key-protected, or unrestricted buckets; the buckets come
// from configuration so deployments can tighten or open the surface without
// a rebuild.
package accesspolicy

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/climatechart/server/internal/common"
	"github.com/climatechart/server/internal/logging"
	"github.com/climatechart/server/internal/server/apikeys"
)

// Class is the protection level assigned to a method.
type Class int

const (
	// Public methods accept anonymous callers.
	Public Class = iota
	// APIKey methods require a live API key plus the owning account's email.
	APIKey
	// Unrestricted methods are ones no list claims; they pass through.
	Unrestricted
)

var (
	// ErrKeyRequired is returned when an API-key method is called without
	// both credential headers.
	ErrKeyRequired = errors.New("API key required")
	// ErrKeyInvalid is returned when the presented key does not match the
	// account's current key.
	ErrKeyInvalid = errors.New("API key required or invalid")
	// ErrAuthFault hides storage faults from callers during credential
	// checks; the underlying cause is logged, never returned.
	ErrAuthFault = errors.New("Authentication error")
)

// MethodSet is a set of full gRPC method names.
type MethodSet map[string]struct{}

func (s MethodSet) Contains(method string) bool {
	_, ok := s[method]
	return ok
}

// ParseMethodList splits a comma-separated method list from configuration
// into a set, dropping whitespace and empty items.
func ParseMethodList(list string) MethodSet {
	set := MethodSet{}
	for _, m := range strings.Split(list, ",") {
		if m = strings.TrimSpace(m); m != "" {
			set[m] = struct{}{}
		}
	}
	return set
}

// KeyLookup is the slice of the API-key ledger the policy needs.
type KeyLookup interface {
	Get(ctx context.Context, userEmail string) (*apikeys.Key, error)
}

type Policy struct {
	public MethodSet
	apiKey MethodSet
	keys   KeyLookup
	logger logging.Logger
}

func New(public, apiKey MethodSet, keys KeyLookup, logger logging.Logger) *Policy {
	return &Policy{
		public: public,
		apiKey: apiKey,
		keys:   keys,
		logger: logger.With("module", "accesspolicy"),
	}
}

// Classify returns the protection level for a full method name. Public wins
// when a method appears in both lists.
func (p *Policy) Classify(method string) Class {
	switch {
	case p.public.Contains(method):
		return Public
	case p.apiKey.Contains(method):
		return APIKey
	default:
		return Unrestricted
	}
}

// Authorize checks the presented credentials against the method's class.
// For API-key methods both the key and the account email must be present,
// and the key must equal the account's newest live key. The comparison is
// constant-time; nothing about which half failed leaks to the caller.
func (p *Policy) Authorize(ctx context.Context, method, apiKey, userEmail string) error {
	if p.Classify(method) != APIKey {
		return nil
	}

	if apiKey == "" || userEmail == "" {
		return ErrKeyRequired
	}

	current, err := p.keys.Get(ctx, userEmail)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return ErrKeyInvalid
		}
		p.logger.Error(ctx, "api key lookup failed", "method", method, "error", err)
		return ErrAuthFault
	}

	if subtle.ConstantTimeCompare([]byte(current.Value), []byte(apiKey)) != 1 {
		return ErrKeyInvalid
	}
	return nil
}
