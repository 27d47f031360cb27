package weather

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/climatechart/server/internal/server/store"
)

// DynamoRepository caches forecasts in a table keyed (city, date).
type DynamoRepository struct {
	client    *dynamodb.Client
	tableName string
}

func NewDynamoRepository(client *dynamodb.Client, tableName string) *DynamoRepository {
	return &DynamoRepository{client: client, tableName: tableName}
}

func (r *DynamoRepository) Put(ctx context.Context, rec *DailyRecord) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal weather record: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return store.MapError(err)
}

func (r *DynamoRepository) GetByCity(ctx context.Context, city string) ([]DailyRecord, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("city = :city"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":city": &types.AttributeValueMemberS{Value: city},
		},
	})
	if err != nil {
		return nil, store.MapError(err)
	}
	var recs []DailyRecord
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &recs); err != nil {
		return nil, fmt.Errorf("unmarshal weather records: %w", err)
	}
	return recs, nil
}
