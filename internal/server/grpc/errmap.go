package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/climatechart/server/internal/common"
)

const internalErrorMsg = "Internal server error."

// mapError converts a domain sentinel into the gRPC status the caller sees.
// Messages stay generic; whatever detail the sentinel was wrapped with is
// for the logs, not the wire.
func mapError(err error, msg string) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, msg)
	case errors.Is(err, common.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, msg)
	case errors.Is(err, common.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, msg)
	case errors.Is(err, common.ErrFailedPrecondition):
		return status.Error(codes.FailedPrecondition, msg)
	case errors.Is(err, common.ErrUnavailable):
		return status.Error(codes.Unavailable, msg)
	default:
		return status.Error(codes.Internal, internalErrorMsg)
	}
}
