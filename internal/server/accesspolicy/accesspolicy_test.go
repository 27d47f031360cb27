package accesspolicy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/climatechart/server/internal/common"
	"github.com/climatechart/server/internal/logging"
	"github.com/climatechart/server/internal/server/apikeys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockKeys struct{ mock.Mock }

func (m *mockKeys) Get(ctx context.Context, userEmail string) (*apikeys.Key, error) {
	args := m.Called(ctx, userEmail)
	if k, _ := args.Get(0).(*apikeys.Key); k != nil {
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

func TestParseMethodList(t *testing.T) {
	tests := []struct {
		name string
		list string
		want MethodSet
	}{
		{"empty", "", MethodSet{}},
		{"single", "/user.UserService/Login", MethodSet{"/user.UserService/Login": {}}},
		{
			"whitespace and blanks dropped",
			" /a/B , ,/c/D,",
			MethodSet{"/a/B": {}, "/c/D": {}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMethodList(tt.list))
		})
	}
}

func newTestPolicy(keys KeyLookup) *Policy {
	return New(
		ParseMethodList("/user.UserService/SignUp,/user.UserService/Login"),
		ParseMethodList("/weather.WeatherService/GetDaily"),
		keys,
		nopLogger{},
	)
}

func TestPolicy_Classify(t *testing.T) {
	p := newTestPolicy(&mockKeys{})

	assert.Equal(t, Public, p.Classify("/user.UserService/Login"))
	assert.Equal(t, APIKey, p.Classify("/weather.WeatherService/GetDaily"))
	assert.Equal(t, Unrestricted, p.Classify("/user.UserService/Unlisted"))
}

func TestPolicy_Classify_PublicWinsOverlap(t *testing.T) {
	p := New(
		ParseMethodList("/a/B"),
		ParseMethodList("/a/B"),
		&mockKeys{},
		nopLogger{},
	)
	assert.Equal(t, Public, p.Classify("/a/B"))
}

func TestPolicy_Authorize(t *testing.T) {
	const method = "/weather.WeatherService/GetDaily"
	now := time.Now()
	live := &apikeys.Key{
		UserEmail: "a@x.com",
		Value:     "live-token",
		CreatedAt: now,
		ExpiresAt: now.Add(24 * time.Hour).Unix(),
	}

	t.Run("public needs nothing", func(t *testing.T) {
		keys := &mockKeys{}
		p := newTestPolicy(keys)
		assert.NoError(t, p.Authorize(context.Background(), "/user.UserService/Login", "", ""))
		keys.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("unlisted passes through", func(t *testing.T) {
		keys := &mockKeys{}
		p := newTestPolicy(keys)
		assert.NoError(t, p.Authorize(context.Background(), "/user.UserService/Unlisted", "", ""))
		keys.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("matching key passes", func(t *testing.T) {
		keys := &mockKeys{}
		keys.On("Get", mock.Anything, "a@x.com").Return(live, nil)
		p := newTestPolicy(keys)

		assert.NoError(t, p.Authorize(context.Background(), method, "live-token", "a@x.com"))
	})

	t.Run("missing key header", func(t *testing.T) {
		p := newTestPolicy(&mockKeys{})
		err := p.Authorize(context.Background(), method, "", "a@x.com")
		assert.ErrorIs(t, err, ErrKeyRequired)
	})

	t.Run("missing email header", func(t *testing.T) {
		p := newTestPolicy(&mockKeys{})
		err := p.Authorize(context.Background(), method, "live-token", "")
		assert.ErrorIs(t, err, ErrKeyRequired)
	})

	t.Run("wrong key", func(t *testing.T) {
		keys := &mockKeys{}
		keys.On("Get", mock.Anything, "a@x.com").Return(live, nil)
		p := newTestPolicy(keys)

		err := p.Authorize(context.Background(), method, "stale-token", "a@x.com")
		assert.ErrorIs(t, err, ErrKeyInvalid)
	})

	t.Run("account without key", func(t *testing.T) {
		keys := &mockKeys{}
		keys.On("Get", mock.Anything, "a@x.com").Return(nil, common.ErrNotFound)
		p := newTestPolicy(keys)

		err := p.Authorize(context.Background(), method, "live-token", "a@x.com")
		assert.ErrorIs(t, err, ErrKeyInvalid)
	})

	t.Run("lookup fault is masked", func(t *testing.T) {
		keys := &mockKeys{}
		keys.On("Get", mock.Anything, "a@x.com").Return(nil, errors.New("dial tcp: refused"))
		p := newTestPolicy(keys)

		err := p.Authorize(context.Background(), method, "live-token", "a@x.com")
		assert.ErrorIs(t, err, ErrAuthFault)
		assert.NotContains(t, err.Error(), "dial")
	})
}
