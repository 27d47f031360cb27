package store

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// StrKey builds a DynamoDB primary key map with a single string attribute.
func StrKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberS{Value: value},
	}
}

// CompositeKey builds a DynamoDB primary key with two string attributes (PK + SK).
func CompositeKey(pkName, pkValue, skName, skValue string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		pkName: &types.AttributeValueMemberS{Value: pkValue},
		skName: &types.AttributeValueMemberS{Value: skValue},
	}
}
