package apikeys

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/climatechart/server/internal/common"
	"github.com/climatechart/server/internal/server/store"
)

// DynamoRepository keeps API keys in a table keyed by the key value itself,
// which makes the conditional put the unique index on values. Lookups by
// account go through the user_email GSI, newest first.
type DynamoRepository struct {
	client    *dynamodb.Client
	tableName string
}

func NewDynamoRepository(client *dynamodb.Client, tableName string) *DynamoRepository {
	return &DynamoRepository{client: client, tableName: tableName}
}

func (r *DynamoRepository) Insert(ctx context.Context, key *Key) error {
	item, err := attributevalue.MarshalMap(key)
	if err != nil {
		return fmt.Errorf("marshal api key: %w", err)
	}
	// "value" is a DynamoDB reserved word, hence the alias.
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#v)"),
		ExpressionAttributeNames: map[string]string{"#v": "value"},
	})
	return store.MapError(err)
}

func (r *DynamoRepository) GetLatestByUserEmail(ctx context.Context, userEmail string) (*Key, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("user_email-index"),
		KeyConditionExpression: aws.String("user_email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: userEmail},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return nil, store.MapError(err)
	}
	if len(out.Items) == 0 {
		return nil, common.ErrNotFound
	}
	var k Key
	if err := attributevalue.UnmarshalMap(out.Items[0], &k); err != nil {
		return nil, fmt.Errorf("unmarshal api key: %w", err)
	}
	return &k, nil
}
