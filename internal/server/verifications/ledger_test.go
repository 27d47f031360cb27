package verifications

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

func (m *mockRepo) Put(ctx context.Context, code *Code) error {
	return m.Called(ctx, code).Error(0)
}

func (m *mockRepo) Get(ctx context.Context, email string) (*Code, error) {
	args := m.Called(ctx, email)
	if c, _ := args.Get(0).(*Code); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger          { return n }

var sixDigits = regexp.MustCompile(`^[0-9]{6}$`)

func newTestLedger(repo Repository) *Ledger {
	return NewLedger(repo, 15*time.Minute, nopLogger{})
}

func TestLedger_Issue(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Get", mock.Anything, "a@x.com").Return(nil, common.ErrNotFound)

	var stored *Code
	repo.On("Put", mock.Anything, mock.AnythingOfType("*verifications.Code")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*Code) }).
		Return(nil)

	l := newTestLedger(repo)
	code, err := l.Issue(context.Background(), " A@X.com ")
	require.NoError(t, err)

	assert.Regexp(t, sixDigits, code)
	require.NotNil(t, stored)
	assert.Equal(t, "a@x.com", stored.Email)
	assert.Equal(t, code, stored.Code)
	assert.Equal(t, stored.CreatedAt.Add(15*time.Minute).Unix(), stored.ExpiresAt)
}

func TestLedger_Issue_AlreadyPending(t *testing.T) {
	now := time.Now()
	repo := &mockRepo{}
	repo.On("Get", mock.Anything, "a@x.com").Return(&Code{
		Email:     "a@x.com",
		Code:      "654321",
		CreatedAt: now,
		ExpiresAt: now.Add(15 * time.Minute).Unix(),
	}, nil)

	l := newTestLedger(repo)
	_, err := l.Issue(context.Background(), "a@x.com")
	assert.ErrorIs(t, err, ErrAlreadySent)
	repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestLedger_Issue_ExpiredLeftoverIsIgnored(t *testing.T) {
	old := time.Now().Add(-time.Hour)
	repo := &mockRepo{}
	repo.On("Get", mock.Anything, "a@x.com").Return(&Code{
		Email:     "a@x.com",
		Code:      "654321",
		CreatedAt: old,
		ExpiresAt: old.Add(15 * time.Minute).Unix(),
	}, nil)
	repo.On("Put", mock.Anything, mock.Anything).Return(nil)

	l := newTestLedger(repo)
	code, err := l.Issue(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Regexp(t, sixDigits, code)
}

func TestLedger_Issue_LostInsertRace(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Get", mock.Anything, "a@x.com").Return(nil, common.ErrNotFound)
	repo.On("Put", mock.Anything, mock.Anything).Return(common.ErrAlreadyExists)

	l := newTestLedger(repo)
	_, err := l.Issue(context.Background(), "a@x.com")
	assert.ErrorIs(t, err, ErrAlreadySent)
}

func TestLedger_Confirm(t *testing.T) {
	now := time.Now()
	live := &Code{
		Email:     "a@x.com",
		Code:      "654321",
		CreatedAt: now,
		ExpiresAt: now.Add(15 * time.Minute).Unix(),
	}

	t.Run("match", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("Get", mock.Anything, "a@x.com").Return(live, nil)
		l := newTestLedger(repo)

		assert.NoError(t, l.Confirm(context.Background(), "a@x.com", "654321"))
	})

	t.Run("confirm is not consuming, replay succeeds", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("Get", mock.Anything, "a@x.com").Return(live, nil)
		l := newTestLedger(repo)

		require.NoError(t, l.Confirm(context.Background(), "a@x.com", "654321"))
		assert.NoError(t, l.Confirm(context.Background(), "a@x.com", "654321"))
	})

	t.Run("mismatch", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("Get", mock.Anything, "a@x.com").Return(live, nil)
		l := newTestLedger(repo)

		err := l.Confirm(context.Background(), "a@x.com", "000000")
		assert.ErrorIs(t, err, ErrCodeMismatch)
	})

	t.Run("absent", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("Get", mock.Anything, "a@x.com").Return(nil, common.ErrNotFound)
		l := newTestLedger(repo)

		err := l.Confirm(context.Background(), "a@x.com", "654321")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("expired record behaves as absent", func(t *testing.T) {
		old := time.Now().Add(-16 * time.Minute)
		repo := &mockRepo{}
		repo.On("Get", mock.Anything, "a@x.com").Return(&Code{
			Email:     "a@x.com",
			Code:      "654321",
			CreatedAt: old,
			ExpiresAt: old.Add(15 * time.Minute).Unix(),
		}, nil)
		l := newTestLedger(repo)

		err := l.Confirm(context.Background(), "a@x.com", "654321")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func Test_generateCode_FixedWidth(t *testing.T) {
	for i := 0; i < 64; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		assert.Regexp(t, sixDigits, code)
	}
}
