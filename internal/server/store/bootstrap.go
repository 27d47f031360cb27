package store

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/climatechart/server/internal/logging"
	"github.com/climatechart/server/internal/server/config"
)

// TTLAttribute is the epoch-seconds attribute DynamoDB expires records on.
// TTL deletion lags (up to tens of hours), so readers must additionally
// filter by this attribute themselves.
const TTLAttribute = "expires_at"

// Bootstrap creates all tables, GSIs and TTL settings if they don't already
// exist. Safe to call on every startup; existing tables are skipped.
func Bootstrap(ctx context.Context, client *dynamodb.Client, cfg *config.Config, logger logging.Logger) {
	createTable(ctx, client, logger, &dynamodb.CreateTableInput{
		TableName:   aws.String(cfg.UsersTable),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("email"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("email"), KeyType: types.KeyTypeHash},
		},
	})

	// API keys are keyed by value so the conditional put enforces value
	// uniqueness; reads go through the user_email GSI, newest first.
	createTable(ctx, client, logger, &dynamodb.CreateTableInput{
		TableName:   aws.String(cfg.APIKeysTable),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("value"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("user_email"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("created_at"), AttributeType: types.ScalarAttributeTypeN},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("value"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			gsi("user_email-index", "user_email", "created_at"),
		},
	})

	createTable(ctx, client, logger, &dynamodb.CreateTableInput{
		TableName:   aws.String(cfg.VerificationsTable),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("email"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("email"), KeyType: types.KeyTypeHash},
		},
	})

	createTable(ctx, client, logger, &dynamodb.CreateTableInput{
		TableName:   aws.String(cfg.WeatherTable),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("city"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("date"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("city"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("date"), KeyType: types.KeyTypeRange},
		},
	})

	enableTTL(ctx, client, logger, cfg.APIKeysTable)
	enableTTL(ctx, client, logger, cfg.VerificationsTable)
}

func gsi(name, hashAttr, rangeAttr string) types.GlobalSecondaryIndex {
	schema := []types.KeySchemaElement{
		{AttributeName: aws.String(hashAttr), KeyType: types.KeyTypeHash},
	}
	if rangeAttr != "" {
		schema = append(schema, types.KeySchemaElement{
			AttributeName: aws.String(rangeAttr), KeyType: types.KeyTypeRange,
		})
	}
	return types.GlobalSecondaryIndex{
		IndexName:  aws.String(name),
		KeySchema:  schema,
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}
}

func createTable(ctx context.Context, client *dynamodb.Client, logger logging.Logger, input *dynamodb.CreateTableInput) {
	_, err := client.CreateTable(ctx, input)
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return
		}
		logger.Error(ctx, "create table failed", "table", aws.ToString(input.TableName), "error", err)
		return
	}
	logger.Info(ctx, "created table", "table", aws.ToString(input.TableName))
}

func enableTTL(ctx context.Context, client *dynamodb.Client, logger logging.Logger, table string) {
	_, err := client.UpdateTimeToLive(ctx, &dynamodb.UpdateTimeToLiveInput{
		TableName: aws.String(table),
		TimeToLiveSpecification: &types.TimeToLiveSpecification{
			AttributeName: aws.String(TTLAttribute),
			Enabled:       aws.Bool(true),
		},
	})
	if err != nil {
		// Re-enabling TTL on a table that already has it raises a
		// ValidationException; that case is fine to ignore.
		logger.Debug(ctx, "ttl update skipped", "table", table, "error", err)
	}
}
