package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// header returns the first value for a metadata key, or "".
func header(md metadata.MD, name string) string {
	if values := md.Get(name); len(values) > 0 {
		return values[0]
	}
	return ""
}

// authInterceptor runs the access policy before every unary call. The
// handler is never invoked on a rejection, and every rejection leaves as
// Unauthenticated; the policy keeps the underlying cause to itself.
func (s *GRPCServer) authInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	var apiKey, userEmail string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		apiKey = header(md, s.apiKeyHeader)
		userEmail = header(md, s.userEmailHeader)
	}

	if err := s.gate.Authorize(ctx, info.FullMethod, apiKey, userEmail); err != nil {
		s.logger.Warn(ctx, "request rejected", "method", info.FullMethod)
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	return handler(ctx, req)
}
