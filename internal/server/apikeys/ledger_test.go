package apikeys

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/climatechart/server/internal/common"
	"github.com/climatechart/server/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) Insert(ctx context.Context, key *Key) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockRepo) GetLatestByUserEmail(ctx context.Context, userEmail string) (*Key, error) {
	args := m.Called(ctx, userEmail)
	if k, _ := args.Get(0).(*Key); k != nil {
		return k, args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger          { return n }

// 32 random bytes in unpadded URL-safe base64.
var tokenShape = regexp.MustCompile(`^[A-Za-z0-9_-]{43}$`)

func newTestLedger(repo Repository) *Ledger {
	return NewLedger(repo, 24*time.Hour, nopLogger{})
}

func TestLedger_Create(t *testing.T) {
	repo := &mockRepo{}
	var stored *Key
	repo.On("Insert", mock.Anything, mock.AnythingOfType("*apikeys.Key")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*Key) }).
		Return(nil)

	l := newTestLedger(repo)
	key, err := l.Create(context.Background(), " A@X.com ")
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", key.UserEmail)
	assert.Regexp(t, tokenShape, key.Value)
	assert.Equal(t, key.CreatedAt.Add(24*time.Hour).Unix(), key.ExpiresAt)
	assert.Same(t, stored, key)
}

func TestLedger_Create_ValuesDiffer(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	l := newTestLedger(repo)
	a, err := l.Create(context.Background(), "a@x.com")
	require.NoError(t, err)
	b, err := l.Create(context.Background(), "a@x.com")
	require.NoError(t, err)

	assert.NotEqual(t, a.Value, b.Value)
}

func TestLedger_Create_ValueCollision(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Insert", mock.Anything, mock.Anything).Return(common.ErrAlreadyExists)

	l := newTestLedger(repo)
	_, err := l.Create(context.Background(), "a@x.com")
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestLedger_Get(t *testing.T) {
	now := time.Now()
	live := &Key{
		UserEmail: "a@x.com",
		Value:     "token",
		CreatedAt: now,
		ExpiresAt: now.Add(24 * time.Hour).Unix(),
	}

	t.Run("live key", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("GetLatestByUserEmail", mock.Anything, "a@x.com").Return(live, nil)
		l := newTestLedger(repo)

		key, err := l.Get(context.Background(), " A@X.com ")
		require.NoError(t, err)
		assert.Equal(t, live, key)
	})

	t.Run("absent", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("GetLatestByUserEmail", mock.Anything, "a@x.com").Return(nil, common.ErrNotFound)
		l := newTestLedger(repo)

		_, err := l.Get(context.Background(), "a@x.com")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("expired key behaves as absent", func(t *testing.T) {
		old := time.Now().Add(-25 * time.Hour)
		repo := &mockRepo{}
		repo.On("GetLatestByUserEmail", mock.Anything, "a@x.com").Return(&Key{
			UserEmail: "a@x.com",
			Value:     "token",
			CreatedAt: old,
			ExpiresAt: old.Add(24 * time.Hour).Unix(),
		}, nil)
		l := newTestLedger(repo)

		_, err := l.Get(context.Background(), "a@x.com")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}
