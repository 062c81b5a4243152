package repository

import (
	"context"
	"testing"
	"time"

	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCashTransactionDynamoRepository_Create(t *testing.T) {
	entrada := entities.CashTransaction{
		ID:     "tx-1",
		JobID:  "j-1",
		Type:   entities.CashTransactionEntrada,
		Amount: 1078,
		Method: "pix",
		Status: entities.PaymentStatusAprovado,
		Date:   time.Now().UTC(),
	}

	t.Run("entrada writes guard item", func(t *testing.T) {
		mockClient := new(MockDynamoDBClient)
		repo := NewCashTransactionDynamoRepository(mockClient, "test-cash", "test-counters")

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			guard := input.TransactItems[0].Put
			name := guard.Item["name"].(*types.AttributeValueMemberS)
			return *guard.TableName == "test-counters" && name.Value == "entrada#j-1" &&
				*input.TransactItems[1].Put.TableName == "test-cash"
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		_, err := repo.Create(context.Background(), entrada)
		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("second entrada", func(t *testing.T) {
		mockClient := new(MockDynamoDBClient)
		repo := NewCashTransactionDynamoRepository(mockClient, "test-cash", "test-counters")

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(&dynamodb.TransactWriteItemsOutput{}, &types.TransactionCanceledException{
				CancellationReasons: []types.CancellationReason{{Code: aws.String("ConditionalCheckFailed")}, {Code: aws.String("None")}},
			})

		_, err := repo.Create(context.Background(), entrada)
		assert.ErrorIs(t, err, interfaces.ErrConditionFailed)
	})

	t.Run("saida is a plain put", func(t *testing.T) {
		mockClient := new(MockDynamoDBClient)
		repo := NewCashTransactionDynamoRepository(mockClient, "test-cash", "test-counters")

		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.PutItemInput) bool {
			return *input.TableName == "test-cash"
		})).Return(&dynamodb.PutItemOutput{}, nil)

		_, err := repo.Create(context.Background(), entities.CashTransaction{ID: "tx-2", Type: entities.CashTransactionSaida, Amount: 50})
		assert.NoError(t, err)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})
}
