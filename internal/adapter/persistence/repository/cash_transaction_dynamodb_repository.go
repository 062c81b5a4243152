package repository

import (
	"context"
	"sort"

	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type cashTransactionItem struct {
	ID                 string         `dynamodbav:"id"`
	JobID              string         `dynamodbav:"job_id,omitempty"`
	Type               string         `dynamodbav:"type"`
	Amount             float64        `dynamodbav:"amount"`
	Method             string         `dynamodbav:"method"`
	Description        string         `dynamodbav:"description"`
	Status             string         `dynamodbav:"status"`
	ProviderPaymentID  string         `dynamodbav:"provider_payment_id,omitempty"`
	Date               string         `dynamodbav:"date"`
	ProviderPayload    map[string]any `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string         `dynamodbav:"provider_payload_raw,omitempty"`
}

// CashTransactionDynamoRepository persists cash register entries.
//
// A job entrada is written together with a guard item "entrada#<job id>" in
// the counters table, so a second entrada for the same job cancels the
// transaction.
type CashTransactionDynamoRepository struct {
	ddb           DynamoDBAPI
	tableName     string
	countersTable string
}

var _ interfaces.ICashTransactionRepository = (*CashTransactionDynamoRepository)(nil)

func NewCashTransactionDynamoRepository(ddb DynamoDBAPI, tableName, countersTable string) *CashTransactionDynamoRepository {
	return &CashTransactionDynamoRepository{ddb: ddb, tableName: tableName, countersTable: countersTable}
}

func (r *CashTransactionDynamoRepository) Create(ctx context.Context, tx entities.CashTransaction) (entities.CashTransaction, error) {
	av, err := attributevalue.MarshalMap(toCashTransactionItem(tx))
	if err != nil {
		return entities.CashTransaction{}, err
	}
	put := &types.Put{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}

	if tx.Type != entities.CashTransactionEntrada || tx.JobID == "" {
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:                put.TableName,
			Item:                     put.Item,
			ConditionExpression:      put.ConditionExpression,
			ExpressionAttributeNames: put.ExpressionAttributeNames,
		})
		if err != nil {
			if _, ok := conditionFailed(err); ok {
				return entities.CashTransaction{}, interfaces.ErrConditionFailed
			}
			return entities.CashTransaction{}, err
		}
		return tx, nil
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName: aws.String(r.countersTable),
					Item: map[string]types.AttributeValue{
						"name":           &types.AttributeValueMemberS{Value: entradaGuardKey(tx.JobID)},
						"transaction_id": &types.AttributeValueMemberS{Value: tx.ID},
					},
					ConditionExpression:      aws.String("attribute_not_exists(#name)"),
					ExpressionAttributeNames: map[string]string{"#name": "name"},
				},
			},
			{Put: put},
		},
	})
	if err != nil {
		if transactionConditionFailed(err) {
			return entities.CashTransaction{}, interfaces.ErrConditionFailed
		}
		return entities.CashTransaction{}, err
	}
	return tx, nil
}

func (r *CashTransactionDynamoRepository) List(ctx context.Context) ([]entities.CashTransaction, error) {
	items, err := scanAll[cashTransactionItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return fromCashTransactionItems(items), nil
}

func (r *CashTransactionDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.CashTransaction, error) {
	items, err := queryIndex[cashTransactionItem](ctx, r.ddb, r.tableName, cashJobIDIndex, "job_id", jobID)
	if err != nil {
		return nil, err
	}
	return fromCashTransactionItems(items), nil
}

func entradaGuardKey(jobID string) string {
	return "entrada#" + jobID
}

func toCashTransactionItem(tx entities.CashTransaction) cashTransactionItem {
	return cashTransactionItem{
		ID:                 tx.ID,
		JobID:              tx.JobID,
		Type:               string(tx.Type),
		Amount:             tx.Amount,
		Method:             tx.Method,
		Description:        tx.Description,
		Status:             string(tx.Status),
		ProviderPaymentID:  tx.ProviderPaymentID,
		Date:               formatTime(tx.Date),
		ProviderPayload:    tx.ProviderPayload,
		ProviderPayloadRaw: string(tx.ProviderPayloadRaw),
	}
}

func fromCashTransactionItems(items []cashTransactionItem) []entities.CashTransaction {
	txs := make([]entities.CashTransaction, 0, len(items))
	for _, it := range items {
		txs = append(txs, entities.CashTransaction{
			ID:                 it.ID,
			JobID:              it.JobID,
			Type:               entities.CashTransactionType(it.Type),
			Amount:             it.Amount,
			Method:             it.Method,
			Description:        it.Description,
			Status:             entities.PaymentStatus(it.Status),
			ProviderPaymentID:  it.ProviderPaymentID,
			Date:               parseTime(it.Date),
			ProviderPayload:    it.ProviderPayload,
			ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
		})
	}
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.After(txs[j].Date) })
	return txs
}
