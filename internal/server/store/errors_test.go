package store

import (
	"errors"
	"net"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/climatechart/server/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{
			name: "conditional check fails maps to conflict",
			err:  &types.ConditionalCheckFailedException{},
			want: common.ErrAlreadyExists,
		},
		{
			name: "wrapped conditional check",
			err: &smithy.OperationError{
				ServiceID:     "DynamoDB",
				OperationName: "PutItem",
				Err:           &types.ConditionalCheckFailedException{},
			},
			want: common.ErrAlreadyExists,
		},
		{
			name: "throttling is retryable",
			err:  &types.ProvisionedThroughputExceededException{},
			want: common.ErrUnavailable,
		},
		{
			name: "missing table is an infrastructure fault",
			err:  &types.ResourceNotFoundException{},
			want: common.ErrUnavailable,
		},
		{
			name: "transport failure is retryable",
			err:  &net.OpError{Op: "dial", Err: errors.New("connection refused")},
			want: common.ErrUnavailable,
		},
		{
			name: "unknown api error is internal",
			err:  &smithy.GenericAPIError{Code: "ValidationException", Message: "bad expr"},
			want: common.ErrInternal,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MapError(tc.err)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}
}
