package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/climatechart/server/internal/logging"
	"github.com/climatechart/server/internal/server/config"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// allowAll is a gate that admits everything.
type allowAll struct{}

func (allowAll) Authorize(context.Context, string, string, string) error { return nil }

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.EndpointAddrGRPC = "127.0.0.1:0"
	return cfg
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv, err := NewGRPCServer(testConfig(), nopLogger{}, nil, nil, nil, nil, allowAll{}, nil)
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run(ctx)
	}()

	// give the server a moment to start listening
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}

func TestRun_BadAddress(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.EndpointAddrGRPC = "256.256.256.256:99999"
	srv, err := NewGRPCServer(cfg, nopLogger{}, nil, nil, nil, nil, allowAll{}, nil)
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}

	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected listen error")
	}
}
