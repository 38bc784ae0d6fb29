package repository

import (
	"context"
	"strconv"
	"time"

	"eventpay/internal/domain/entities"
	"eventpay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultGatewayConfigsTableName = "gateway_configs"

type gatewayConfigItem struct {
	MerchantID  int64             `dynamodbav:"merchant_id"`
	GatewayType string            `dynamodbav:"gateway_type"`
	Fields      map[string]string `dynamodbav:"fields,omitempty"`
	IsDefault   bool              `dynamodbav:"is_default"`
	Deleted     bool              `dynamodbav:"deleted"`
	UpdatedAt   string            `dynamodbav:"updated_at"`
}

// GatewayConfigDynamoRepository persists GatewayConfig documents in DynamoDB.
//
// Table requirements:
//   - PK: merchant_id (number)
//   - SK: gateway_type (string)
//
// Upsert is a plain PutItem keyed by (merchant, type): writing the same
// document twice converges, which is the idempotency the config flow relies
// on instead of locking. Deletes only flip the tombstone flag.

type GatewayConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IGatewayConfigRepository = (*GatewayConfigDynamoRepository)(nil)

func NewGatewayConfigDynamoRepository(ddb *dynamodb.Client) *GatewayConfigDynamoRepository {
	return &GatewayConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GATEWAY_CONFIGS_TABLE", defaultGatewayConfigsTableName),
	}
}

func (r *GatewayConfigDynamoRepository) ListByMerchant(ctx context.Context, merchantID int64) ([]entities.GatewayConfig, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("merchant_id = :mid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberN{Value: strconv.FormatInt(merchantID, 10)},
		},
	})
	if err != nil {
		return nil, err
	}

	configs := make([]entities.GatewayConfig, 0, len(out.Items))
	for _, raw := range out.Items {
		var it gatewayConfigItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		configs = append(configs, fromGatewayConfigItem(it))
	}
	return configs, nil
}

func (r *GatewayConfigDynamoRepository) Get(ctx context.Context, merchantID int64, gatewayType entities.GatewayType) (entities.GatewayConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            gatewayConfigKey(merchantID, gatewayType),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.GatewayConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.GatewayConfig{}, nil
	}

	var it gatewayConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GatewayConfig{}, err
	}
	return fromGatewayConfigItem(it), nil
}

func (r *GatewayConfigDynamoRepository) Upsert(ctx context.Context, cfg entities.GatewayConfig) (entities.GatewayConfig, error) {
	if cfg.UpdatedAt.IsZero() {
		cfg.UpdatedAt = time.Now().UTC()
	}
	av, err := attributevalue.MarshalMap(toGatewayConfigItem(cfg))
	if err != nil {
		return entities.GatewayConfig{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.GatewayConfig{}, err
	}
	return cfg, nil
}

func (r *GatewayConfigDynamoRepository) ClearDefaultFlags(ctx context.Context, merchantID int64) error {
	configs, err := r.ListByMerchant(ctx, merchantID)
	if err != nil {
		return err
	}
	for _, cfg := range configs {
		if !cfg.IsDefault {
			continue
		}
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:        aws.String(r.tableName),
			Key:              gatewayConfigKey(merchantID, cfg.Type),
			UpdateExpression: aws.String("SET is_default = :f, updated_at = :now"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":f":   &types.AttributeValueMemberBOOL{Value: false},
				":now": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *GatewayConfigDynamoRepository) SoftDelete(ctx context.Context, merchantID int64, gatewayType entities.GatewayType) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              gatewayConfigKey(merchantID, gatewayType),
		UpdateExpression: aws.String("SET deleted = :t, is_default = :f, updated_at = :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t":   &types.AttributeValueMemberBOOL{Value: true},
			":f":   &types.AttributeValueMemberBOOL{Value: false},
			":now": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	return err
}

func gatewayConfigKey(merchantID int64, gatewayType entities.GatewayType) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"merchant_id":  &types.AttributeValueMemberN{Value: strconv.FormatInt(merchantID, 10)},
		"gateway_type": &types.AttributeValueMemberS{Value: string(gatewayType)},
	}
}

func toGatewayConfigItem(cfg entities.GatewayConfig) gatewayConfigItem {
	return gatewayConfigItem{
		MerchantID:  cfg.MerchantID,
		GatewayType: string(cfg.Type),
		Fields:      cfg.Fields,
		IsDefault:   cfg.IsDefault,
		Deleted:     cfg.Deleted,
		UpdatedAt:   cfg.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromGatewayConfigItem(it gatewayConfigItem) entities.GatewayConfig {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.GatewayConfig{
		MerchantID: it.MerchantID,
		Type:       entities.GatewayType(it.GatewayType),
		Fields:     it.Fields,
		IsDefault:  it.IsDefault,
		Deleted:    it.Deleted,
		UpdatedAt:  updatedAt,
	}
}
