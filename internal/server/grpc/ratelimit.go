package grpc

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

type callerEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// callerLimiter is a per-caller token-bucket rate limiter with automatic
// stale-entry cleanup. Callers presenting a user-email header share a bucket
// per account; anonymous callers get one per peer address.
type callerLimiter struct {
	mu      sync.Mutex
	callers map[string]*callerEntry
	r       rate.Limit
	burst   int
}

func newCallerLimiter(rps float64, burst int) *callerLimiter {
	cl := &callerLimiter{
		callers: make(map[string]*callerEntry),
		r:       rate.Limit(rps),
		burst:   burst,
	}
	go cl.cleanup()
	return cl
}

func (cl *callerLimiter) get(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	if v, ok := cl.callers[key]; ok {
		v.lastSeen = time.Now()
		return v.limiter
	}
	l := rate.NewLimiter(cl.r, cl.burst)
	cl.callers[key] = &callerEntry{limiter: l, lastSeen: time.Now()}
	return l
}

// cleanup removes stale entries every 5 minutes.
func (cl *callerLimiter) cleanup() {
	for {
		time.Sleep(5 * time.Minute)
		cl.mu.Lock()
		for key, v := range cl.callers {
			if time.Since(v.lastSeen) > 10*time.Minute {
				delete(cl.callers, key)
			}
		}
		cl.mu.Unlock()
	}
}

// callerKey identifies the bucket a request draws from.
func (s *GRPCServer) callerKey(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if email := header(md, s.userEmailHeader); email != "" {
			return email
		}
	}
	if p, ok := peer.FromContext(ctx); ok {
		return p.Addr.String()
	}
	return "unknown"
}

func (s *GRPCServer) rateLimitInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	key := s.callerKey(ctx)
	if !s.limiter.get(key).Allow() {
		s.logger.Warn(ctx, "rate limit exceeded", "caller", key, "method", info.FullMethod)
		return nil, status.Error(codes.ResourceExhausted, "too many requests")
	}
	return handler(ctx, req)
}
