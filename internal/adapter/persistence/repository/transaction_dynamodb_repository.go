package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"eventpay/internal/domain/entities"
	"eventpay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "transactions"
	transactionsRegistrantIndex  = "registrant_id-index"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type transactionItem struct {
	TransactionID   string  `dynamodbav:"transaction_id"`
	MerchantID      int64   `dynamodbav:"merchant_id"`
	RegistrantID    int64   `dynamodbav:"registrant_id"`
	Amount          float64 `dynamodbav:"amount"`
	Status          string  `dynamodbav:"status"`
	RefTransID      string  `dynamodbav:"ref_trans_id,omitempty"`
	CoRegistrantIDs []int64 `dynamodbav:"co_registrant_ids,omitempty"`
	CreatedAt       string  `dynamodbav:"created_at"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists per-charge Transaction records.
//
// Table requirements:
//   - PK: transaction_id (string, the processor's id)
//   - GSI: registrant_id-index (PK: registrant_id)
//
// Records are append-then-transition: Create refuses to overwrite an
// existing id, UpdateStatus only moves an existing record.

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, tx entities.Transaction) (entities.Transaction, error) {
	av, err := attributevalue.MarshalMap(toTransactionItem(tx))
	if err != nil {
		return entities.Transaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "transaction_id",
		},
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	return tx, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, transactionID string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_id": &types.AttributeValueMemberS{Value: transactionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) UpdateStatus(ctx context.Context, transactionID string, status entities.TransactionStatus, refTransID string) (entities.Transaction, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_id": &types.AttributeValueMemberS{Value: transactionID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #st = :st, ref_trans_id = :ref, updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id": "transaction_id",
			"#st": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":st":  &types.AttributeValueMemberS{Value: string(status)},
			":ref": &types.AttributeValueMemberS{Value: refTransID},
			":now": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.Transaction{}, ErrTransactionNotFound
		}
		return entities.Transaction{}, err
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) ListByRegistrant(ctx context.Context, registrantID int64) ([]entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsRegistrantIndex),
		KeyConditionExpression: aws.String("registrant_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberN{Value: strconv.FormatInt(registrantID, 10)},
		},
	})
	if err != nil {
		return nil, err
	}

	txs := make([]entities.Transaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		txs = append(txs, fromTransactionItem(it))
	}
	return txs, nil
}

func toTransactionItem(tx entities.Transaction) transactionItem {
	return transactionItem{
		TransactionID:   tx.TransactionID,
		MerchantID:      tx.MerchantID,
		RegistrantID:    tx.RegistrantID,
		Amount:          tx.Amount,
		Status:          string(tx.Status),
		RefTransID:      tx.RefTransID,
		CoRegistrantIDs: tx.CoRegistrantIDs,
		CreatedAt:       tx.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       tx.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Transaction{
		TransactionID:   it.TransactionID,
		MerchantID:      it.MerchantID,
		RegistrantID:    it.RegistrantID,
		Amount:          it.Amount,
		Status:          entities.TransactionStatus(it.Status),
		RefTransID:      it.RefTransID,
		CoRegistrantIDs: it.CoRegistrantIDs,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
