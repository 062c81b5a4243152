package repository

import (
	"context"
	"sort"
	"time"

	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type budgetItem struct {
	ID                string        `dynamodbav:"id"`
	Seq               int64         `dynamodbav:"seq"`
	ClientID          string        `dynamodbav:"client_id"`
	ClientName        string        `dynamodbav:"client_name"`
	Services          []serviceItem `dynamodbav:"services"`
	Value             float64       `dynamodbav:"value"`
	DiscountPercent   float64       `dynamodbav:"discount_percent"`
	DiscountValue     float64       `dynamodbav:"discount_value"`
	FinalValue        float64       `dynamodbav:"final_value"`
	Status            string        `dynamodbav:"status"`
	SelectedAddress   string        `dynamodbav:"selected_address"`
	Notes             string        `dynamodbav:"notes,omitempty"`
	TravelDistanceKm  float64       `dynamodbav:"travel_distance_km"`
	TravelPrice       float64       `dynamodbav:"travel_price"`
	TravelDescription string        `dynamodbav:"travel_description"`
	JobID             string        `dynamodbav:"job_id,omitempty"`
	CreatedAt         string        `dynamodbav:"created_at"`
	UpdatedAt         string        `dynamodbav:"updated_at"`
}

// Writes on a budget that already produced a job are rejected.
const budgetNotConvertedCondition = "attribute_exists(#id) AND attribute_not_exists(#job_id) AND #status <> :convertido"

// BudgetDynamoRepository persists Budget entities in DynamoDB and performs
// the budget to job conversion as a single transaction over the budgets and
// jobs tables.
type BudgetDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	jobsTable string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb DynamoDBAPI, tableName, jobsTable string) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{ddb: ddb, tableName: tableName, jobsTable: jobsTable}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.Budget{}, interfaces.ErrConditionFailed
		}
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	it, found, err := getItem[budgetItem](ctx, r.ddb, r.tableName, idKey(id))
	if err != nil || !found {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) List(ctx context.Context) ([]entities.Budget, error) {
	items, err := scanAll[budgetItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	budgets := make([]entities.Budget, 0, len(items))
	for _, it := range items {
		budgets = append(budgets, fromBudgetItem(it))
	}
	sort.SliceStable(budgets, func(i, j int) bool { return budgets[i].Seq > budgets[j].Seq })
	return budgets, nil
}

func (r *BudgetDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

// UpdateTravel stores a new travel snapshot and the totals derived from it.
func (r *BudgetDynamoRepository) UpdateTravel(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	return r.update(ctx, b.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #selected_address = :selected_address, #travel_distance_km = :travel_distance_km, " +
			"#travel_price = :travel_price, #travel_description = :travel_description, " +
			"#final_value = :final_value, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":selected_address":   &types.AttributeValueMemberS{Value: b.SelectedAddress},
			":travel_distance_km": &types.AttributeValueMemberN{Value: floatToString(b.TravelDistanceKm)},
			":travel_price":       &types.AttributeValueMemberN{Value: floatToString(b.TravelPrice)},
			":travel_description": &types.AttributeValueMemberS{Value: b.TravelDescription},
			":final_value":        &types.AttributeValueMemberN{Value: floatToString(b.FinalValue)},
			":updated_at":         &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#selected_address":   "selected_address",
			"#travel_distance_km": "travel_distance_km",
			"#travel_price":       "travel_price",
			"#travel_description": "travel_description",
			"#final_value":        "final_value",
			"#updated_at":         "updated_at",
		}
		return expr, vals, names
	})
}

// Delete removes a budget that has no job. Deleting a missing budget is a
// no-op.
func (r *BudgetDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      idKey(id),
		ConditionExpression:      aws.String("attribute_not_exists(#job_id)"),
		ExpressionAttributeNames: map[string]string{"#job_id": "job_id"},
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return interfaces.ErrConditionFailed
		}
		return err
	}
	return nil
}

// ConvertBudget inserts the job and marks the budget convertido in one
// TransactWriteItems call. When the budget was converted meanwhile the whole
// transaction is cancelled and ErrConditionFailed is returned; a budget that
// was deleted yields ErrNotFound.
func (r *BudgetDynamoRepository) ConvertBudget(ctx context.Context, job entities.Job, budgetID string) (entities.Budget, error) {
	jobAV, err := attributevalue.MarshalMap(toJobItem(job))
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.jobsTable),
					Item:                     jobAV,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				Update: &types.Update{
					TableName:                           aws.String(r.tableName),
					Key:                                 idKey(budgetID),
					UpdateExpression:                    aws.String("SET #status = :convertido, #job_id = :job_id, #updated_at = :updated_at"),
					ConditionExpression:                 aws.String(budgetNotConvertedCondition),
					ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#status":     "status",
						"#job_id":     "job_id",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":convertido": &types.AttributeValueMemberS{Value: string(entities.BudgetStatusConvertido)},
						":job_id":     &types.AttributeValueMemberS{Value: job.ID},
						":updated_at": &types.AttributeValueMemberS{Value: formatTime(job.CreatedAt)},
					},
				},
			},
		},
	})
	if err != nil {
		if transactionItemMissing(err, 1) {
			return entities.Budget{}, interfaces.ErrNotFound
		}
		if transactionConditionFailed(err) {
			return entities.Budget{}, interfaces.ErrConditionFailed
		}
		return entities.Budget{}, err
	}
	return r.GetByID(ctx, budgetID)
}

// update applies a conditional UpdateItem guarded by
// budgetNotConvertedCondition. A missing budget yields a zero value; a
// converted one yields ErrConditionFailed.
func (r *BudgetDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Budget, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)
	values[":convertido"] = &types.AttributeValueMemberS{Value: string(entities.BudgetStatusConvertido)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                           aws.String(r.tableName),
		Key:                                 idKey(id),
		ConditionExpression:                 aws.String(budgetNotConvertedCondition),
		UpdateExpression:                    aws.String(updateExpr),
		ExpressionAttributeValues:           values,
		ExpressionAttributeNames:            mergeNames(names, map[string]string{"#id": "id", "#job_id": "job_id", "#status": "status"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if old, ok := conditionFailed(err); ok {
			if len(old) == 0 {
				return entities.Budget{}, nil
			}
			return entities.Budget{}, interfaces.ErrConditionFailed
		}
		return entities.Budget{}, err
	}
	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	return budgetItem{
		ID:                b.ID,
		Seq:               b.Seq,
		ClientID:          b.ClientID,
		ClientName:        b.ClientName,
		Services:          toServiceItems(b.Services),
		Value:             b.Value,
		DiscountPercent:   b.DiscountPercent,
		DiscountValue:     b.DiscountValue,
		FinalValue:        b.FinalValue,
		Status:            string(b.Status),
		SelectedAddress:   b.SelectedAddress,
		Notes:             b.Notes,
		TravelDistanceKm:  b.TravelDistanceKm,
		TravelPrice:       b.TravelPrice,
		TravelDescription: b.TravelDescription,
		JobID:             b.JobID,
		CreatedAt:         formatTime(b.CreatedAt),
		UpdatedAt:         formatTime(b.UpdatedAt),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	return entities.Budget{
		ID:                it.ID,
		Seq:               it.Seq,
		ClientID:          it.ClientID,
		ClientName:        it.ClientName,
		Services:          fromServiceItems(it.Services),
		Value:             it.Value,
		DiscountPercent:   it.DiscountPercent,
		DiscountValue:     it.DiscountValue,
		FinalValue:        it.FinalValue,
		Status:            entities.BudgetStatus(it.Status),
		SelectedAddress:   it.SelectedAddress,
		Notes:             it.Notes,
		TravelDistanceKm:  it.TravelDistanceKm,
		TravelPrice:       it.TravelPrice,
		TravelDescription: it.TravelDescription,
		JobID:             it.JobID,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
