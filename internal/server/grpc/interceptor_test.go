package grpc

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/climatechart/server/internal/common"
	"github.com/climatechart/server/internal/server/accesspolicy"
)

// gateFunc adapts a func to the Gate interface.
type gateFunc func(ctx context.Context, method, apiKey, userEmail string) error

func (f gateFunc) Authorize(ctx context.Context, method, apiKey, userEmail string) error {
	return f(ctx, method, apiKey, userEmail)
}

func newTestGateServer(gate Gate) *GRPCServer {
	return &GRPCServer{
		apiKeyHeader:    common.APIKeyHeaderName,
		userEmailHeader: common.UserEmailHeaderName,
		gate:            gate,
		logger:          nopLogger{},
	}
}

func TestAuthInterceptor_AllowsWhenGatePasses(t *testing.T) {
	s := newTestGateServer(gateFunc(func(context.Context, string, string, string) error {
		return nil
	}))

	info := &grpc.UnaryServerInfo{FullMethod: "/user.UserService/Login"}
	handlerCalled := false
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.authInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestAuthInterceptor_RejectsWithoutInvokingHandler(t *testing.T) {
	s := newTestGateServer(gateFunc(func(context.Context, string, string, string) error {
		return accesspolicy.ErrKeyRequired
	}))

	info := &grpc.UnaryServerInfo{FullMethod: "/weather.WeatherService/GetDaily"}
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called on rejection")
		return nil, nil
	}

	_, err := s.authInterceptor(context.Background(), nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "API key required" {
		t.Fatalf("unexpected message: %q", status.Convert(err).Message())
	}
}

func TestAuthInterceptor_PassesHeadersToGate(t *testing.T) {
	var gotMethod, gotKey, gotEmail string
	s := newTestGateServer(gateFunc(func(_ context.Context, method, apiKey, userEmail string) error {
		gotMethod, gotKey, gotEmail = method, apiKey, userEmail
		return nil
	}))

	md := metadata.New(map[string]string{
		common.APIKeyHeaderName:    "secret-token",
		common.UserEmailHeaderName: "a@x.com",
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: "/weather.WeatherService/GetDaily"}

	h := func(ctx context.Context, req interface{}) (interface{}, error) { return "ok", nil }

	if _, err := s.authInterceptor(ctx, nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != "/weather.WeatherService/GetDaily" {
		t.Fatalf("method not passed: %q", gotMethod)
	}
	if gotKey != "secret-token" || gotEmail != "a@x.com" {
		t.Fatalf("headers not passed: key=%q email=%q", gotKey, gotEmail)
	}
}

func TestAuthInterceptor_MasksGateFaultMessage(t *testing.T) {
	s := newTestGateServer(gateFunc(func(context.Context, string, string, string) error {
		return accesspolicy.ErrAuthFault
	}))

	info := &grpc.UnaryServerInfo{FullMethod: "/weather.WeatherService/GetDaily"}
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called")
		return nil, nil
	}

	_, err := s.authInterceptor(context.Background(), nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if msg := status.Convert(err).Message(); msg != "Authentication error" {
		t.Fatalf("fault detail leaked: %q", msg)
	}
}

func TestLogInterceptor_ForwardsUntouched(t *testing.T) {
	s := newTestGateServer(allowAll{})

	info := &grpc.UnaryServerInfo{FullMethod: "/user.UserService/GetMe"}
	wantErr := errors.New("handler failure")
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		if req != "req" {
			t.Fatalf("request altered: %v", req)
		}
		return "resp", wantErr
	}

	resp, err := s.logInterceptor(context.Background(), "req", info, h)
	if resp != "resp" {
		t.Fatalf("response altered: %v", resp)
	}
	if !errors.Is(err, wantErr) {
		t.Fatalf("error altered: %v", err)
	}
}

func TestRateLimitInterceptor_ExhaustsBucket(t *testing.T) {
	s := newTestGateServer(allowAll{})
	s.limiter = newCallerLimiter(1, 2)

	md := metadata.New(map[string]string{common.UserEmailHeaderName: "a@x.com"})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: "/user.UserService/GetMe"}
	h := func(ctx context.Context, req interface{}) (interface{}, error) { return "ok", nil }

	for i := 0; i < 2; i++ {
		if _, err := s.rateLimitInterceptor(ctx, nil, info, h); err != nil {
			t.Fatalf("call %d unexpectedly limited: %v", i, err)
		}
	}

	_, err := s.rateLimitInterceptor(ctx, nil, info, h)
	if status.Code(err) != codes.ResourceExhausted {
		t.Fatalf("expected ResourceExhausted, got %v", status.Code(err))
	}

	// A different caller still has a full bucket.
	other := metadata.NewIncomingContext(context.Background(),
		metadata.New(map[string]string{common.UserEmailHeaderName: "b@x.com"}))
	if _, err := s.rateLimitInterceptor(other, nil, info, h); err != nil {
		t.Fatalf("independent caller was limited: %v", err)
	}
}
