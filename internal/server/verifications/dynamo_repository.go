package verifications

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/climatechart/server/internal/common"
	"github.com/climatechart/server/internal/server/store"
)

// DynamoRepository stores verification codes keyed by email, so there is at
// most one physical record per address at any time.
type DynamoRepository struct {
	client    *dynamodb.Client
	tableName string
}

func NewDynamoRepository(client *dynamodb.Client, tableName string) *DynamoRepository {
	return &DynamoRepository{client: client, tableName: tableName}
}

func (r *DynamoRepository) Put(ctx context.Context, code *Code) error {
	item, err := attributevalue.MarshalMap(code)
	if err != nil {
		return fmt.Errorf("marshal verification code: %w", err)
	}
	// The condition allows overwriting an expired leftover the TTL sweep has
	// not collected yet, but rejects while a live code exists.
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(email) OR expires_at <= :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(time.Now().Unix(), 10)},
		},
	})
	return store.MapError(err)
}

func (r *DynamoRepository) Get(ctx context.Context, email string) (*Code, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       store.StrKey("email", email),
	})
	if err != nil {
		return nil, store.MapError(err)
	}
	if out.Item == nil {
		return nil, common.ErrNotFound
	}
	var c Code
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, fmt.Errorf("unmarshal verification code: %w", err)
	}
	return &c, nil
}
