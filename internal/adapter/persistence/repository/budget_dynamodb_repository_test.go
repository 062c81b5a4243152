package repository

import (
	"context"
	"testing"
	"time"

	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedBudget(t *testing.T, b entities.Budget) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	require.NoError(t, err)
	return av
}

func TestBudgetDynamoRepository_GetByID(t *testing.T) {
	mockClient := new(MockDynamoDBClient)
	repo := NewBudgetDynamoRepository(mockClient, "test-budgets", "test-jobs")

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.GetItemInput) bool {
		return *input.TableName == "test-budgets" && aws.ToBool(input.ConsistentRead)
	})).Return(&dynamodb.GetItemOutput{Item: storedBudget(t, entities.Budget{
		ID:         "b-1",
		Seq:        7,
		ClientName: "Alfa",
		Services:   []entities.ServiceItem{{Description: "Estaca", Quantity: 2, Price: 500, FinalValue: 1000}},
		Status:     entities.BudgetStatusAprovado,
		CreatedAt:  created,
	})}, nil).Once()
	mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil).Once()

	b, err := repo.GetByID(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), b.Seq)
	assert.Equal(t, entities.BudgetStatusAprovado, b.Status)
	assert.Equal(t, 1000.0, b.Services[0].FinalValue)
	assert.True(t, created.Equal(b.CreatedAt))

	missing, err := repo.GetByID(context.Background(), "b-2")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
	mockClient.AssertExpectations(t)
}

func TestBudgetDynamoRepository_UpdateStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		mockClient := new(MockDynamoDBClient)
		repo := NewBudgetDynamoRepository(mockClient, "test-budgets", "test-jobs")

		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			return *input.ConditionExpression == budgetNotConvertedCondition &&
				input.ReturnValuesOnConditionCheckFailure == types.ReturnValuesOnConditionCheckFailureAllOld
		})).Return(&dynamodb.UpdateItemOutput{
			Attributes: storedBudget(t, entities.Budget{ID: "b-1", Status: entities.BudgetStatusRejeitado}),
		}, nil)

		b, err := repo.UpdateStatus(context.Background(), "b-1", entities.BudgetStatusRejeitado)
		require.NoError(t, err)
		assert.Equal(t, entities.BudgetStatusRejeitado, b.Status)
	})

	t.Run("missing budget", func(t *testing.T) {
		mockClient := new(MockDynamoDBClient)
		repo := NewBudgetDynamoRepository(mockClient, "test-budgets", "test-jobs")

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).
			Return(&dynamodb.UpdateItemOutput{}, &types.ConditionalCheckFailedException{})

		b, err := repo.UpdateStatus(context.Background(), "b-1", entities.BudgetStatusAprovado)
		require.NoError(t, err)
		assert.Empty(t, b.ID)
	})

	t.Run("converted budget", func(t *testing.T) {
		mockClient := new(MockDynamoDBClient)
		repo := NewBudgetDynamoRepository(mockClient, "test-budgets", "test-jobs")

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).
			Return(&dynamodb.UpdateItemOutput{}, &types.ConditionalCheckFailedException{
				Item: storedBudget(t, entities.Budget{ID: "b-1", Status: entities.BudgetStatusConvertido, JobID: "j-1"}),
			})

		_, err := repo.UpdateStatus(context.Background(), "b-1", entities.BudgetStatusAprovado)
		assert.ErrorIs(t, err, interfaces.ErrConditionFailed)
	})
}

func TestBudgetDynamoRepository_Delete(t *testing.T) {
	mockClient := new(MockDynamoDBClient)
	repo := NewBudgetDynamoRepository(mockClient, "test-budgets", "test-jobs")

	mockClient.On("DeleteItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.DeleteItemInput) bool {
		return *input.ConditionExpression == "attribute_not_exists(#job_id)"
	})).Return(&dynamodb.DeleteItemOutput{}, &types.ConditionalCheckFailedException{})

	err := repo.Delete(context.Background(), "b-1")
	assert.ErrorIs(t, err, interfaces.ErrConditionFailed)
}

func TestBudgetDynamoRepository_ConvertBudget(t *testing.T) {
	job := entities.Job{
		ID:        "j-1",
		BudgetID:  "b-1",
		TeamID:    "t-1",
		Status:    entities.JobStatusPendente,
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("single transaction", func(t *testing.T) {
		mockClient := new(MockDynamoDBClient)
		repo := NewBudgetDynamoRepository(mockClient, "test-budgets", "test-jobs")

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			if len(input.TransactItems) != 2 {
				return false
			}
			put, update := input.TransactItems[0].Put, input.TransactItems[1].Update
			return put != nil && *put.TableName == "test-jobs" &&
				update != nil && *update.TableName == "test-budgets" &&
				*update.ConditionExpression == budgetNotConvertedCondition
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{
			Item: storedBudget(t, entities.Budget{ID: "b-1", Status: entities.BudgetStatusConvertido, JobID: "j-1"}),
		}, nil)

		b, err := repo.ConvertBudget(context.Background(), job, "b-1")
		require.NoError(t, err)
		assert.Equal(t, "j-1", b.JobID)
		assert.True(t, b.IsConverted())
		mockClient.AssertExpectations(t)
	})

	t.Run("lost race", func(t *testing.T) {
		mockClient := new(MockDynamoDBClient)
		repo := NewBudgetDynamoRepository(mockClient, "test-budgets", "test-jobs")

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(&dynamodb.TransactWriteItemsOutput{}, &types.TransactionCanceledException{
				CancellationReasons: []types.CancellationReason{
					{Code: aws.String("None")},
					{
						Code: aws.String("ConditionalCheckFailed"),
						Item: storedBudget(t, entities.Budget{ID: "b-1", Status: entities.BudgetStatusConvertido, JobID: "j-0"}),
					},
				},
			})

		_, err := repo.ConvertBudget(context.Background(), job, "b-1")
		assert.ErrorIs(t, err, interfaces.ErrConditionFailed)
		mockClient.AssertNotCalled(t, "GetItem", mock.Anything, mock.Anything)
	})

	t.Run("budget deleted", func(t *testing.T) {
		mockClient := new(MockDynamoDBClient)
		repo := NewBudgetDynamoRepository(mockClient, "test-budgets", "test-jobs")

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			update := input.TransactItems[1].Update
			return update.ReturnValuesOnConditionCheckFailure == types.ReturnValuesOnConditionCheckFailureAllOld
		})).Return(&dynamodb.TransactWriteItemsOutput{}, &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
			},
		})

		_, err := repo.ConvertBudget(context.Background(), job, "b-1")
		assert.ErrorIs(t, err, interfaces.ErrNotFound)
		assert.NotErrorIs(t, err, interfaces.ErrConditionFailed)
	})
}
