package store

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/climatechart/server/internal/common"
)

// MapError converts a DynamoDB operation error into one of the common
// sentinels, wrapping so the original cause stays available for logging.
// The sentinel, not the cause, is what may cross the RPC boundary.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var cond *types.ConditionalCheckFailedException
	if errors.As(err, &cond) {
		return common.ErrAlreadyExists
	}

	var ae smithy.APIError
	if !errors.As(err, &ae) {
		// Transport-level failure (dial, timeout). Safe for the caller to retry.
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	switch ae.(type) {
	case *types.ProvisionedThroughputExceededException,
		*types.RequestLimitExceeded,
		*types.InternalServerError,
		*types.ResourceNotFoundException:
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	return fmt.Errorf("%w: %v", common.ErrInternal, err)
}
