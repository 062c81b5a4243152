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

type travelPricingRuleItem struct {
	ID          string   `dynamodbav:"id"`
	Type        string   `dynamodbav:"type"`
	UpToKm      *float64 `dynamodbav:"up_to_km,omitempty"`
	PricePerKm  float64  `dynamodbav:"price_per_km"`
	FixedPrice  float64  `dynamodbav:"fixed_price"`
	RoundTrip   bool     `dynamodbav:"round_trip"`
	IsDefault   bool     `dynamodbav:"is_default"`
	Order       int      `dynamodbav:"order"`
	Description string   `dynamodbav:"description,omitempty"`
	CreatedAt   string   `dynamodbav:"created_at"`
	UpdatedAt   string   `dynamodbav:"updated_at"`
}

// TravelPricingRuleDynamoRepository persists travel fee tiers in DynamoDB.
// The rule set is small, so List scans the whole table.
type TravelPricingRuleDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ITravelPricingRuleRepository = (*TravelPricingRuleDynamoRepository)(nil)

func NewTravelPricingRuleDynamoRepository(ddb DynamoDBAPI, tableName string) *TravelPricingRuleDynamoRepository {
	return &TravelPricingRuleDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TravelPricingRuleDynamoRepository) Create(ctx context.Context, rule entities.TravelPricingRule) (entities.TravelPricingRule, error) {
	av, err := attributevalue.MarshalMap(toTravelPricingRuleItem(rule))
	if err != nil {
		return entities.TravelPricingRule{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.TravelPricingRule{}, interfaces.ErrConditionFailed
		}
		return entities.TravelPricingRule{}, err
	}
	return rule, nil
}

func (r *TravelPricingRuleDynamoRepository) List(ctx context.Context) ([]entities.TravelPricingRule, error) {
	items, err := scanAll[travelPricingRuleItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	rules := make([]entities.TravelPricingRule, 0, len(items))
	for _, it := range items {
		rules = append(rules, fromTravelPricingRuleItem(it))
	}
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Order < rules[j].Order })
	return rules, nil
}

func (r *TravelPricingRuleDynamoRepository) GetByID(ctx context.Context, id string) (entities.TravelPricingRule, error) {
	it, found, err := getItem[travelPricingRuleItem](ctx, r.ddb, r.tableName, idKey(id))
	if err != nil || !found {
		return entities.TravelPricingRule{}, err
	}
	return fromTravelPricingRuleItem(it), nil
}

// Update replaces a stored rule. A missing rule yields a zero value.
func (r *TravelPricingRuleDynamoRepository) Update(ctx context.Context, rule entities.TravelPricingRule) (entities.TravelPricingRule, error) {
	av, err := attributevalue.MarshalMap(toTravelPricingRuleItem(rule))
	if err != nil {
		return entities.TravelPricingRule{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.TravelPricingRule{}, nil
		}
		return entities.TravelPricingRule{}, err
	}
	return rule, nil
}

func (r *TravelPricingRuleDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func toTravelPricingRuleItem(r entities.TravelPricingRule) travelPricingRuleItem {
	return travelPricingRuleItem{
		ID:          r.ID,
		Type:        string(r.Type),
		UpToKm:      r.UpToKm,
		PricePerKm:  r.PricePerKm,
		FixedPrice:  r.FixedPrice,
		RoundTrip:   r.RoundTrip,
		IsDefault:   r.IsDefault,
		Order:       r.Order,
		Description: r.Description,
		CreatedAt:   formatTime(r.CreatedAt),
		UpdatedAt:   formatTime(r.UpdatedAt),
	}
}

func fromTravelPricingRuleItem(it travelPricingRuleItem) entities.TravelPricingRule {
	return entities.TravelPricingRule{
		ID:          it.ID,
		Type:        entities.TravelPricingType(it.Type),
		UpToKm:      it.UpToKm,
		PricePerKm:  it.PricePerKm,
		FixedPrice:  it.FixedPrice,
		RoundTrip:   it.RoundTrip,
		IsDefault:   it.IsDefault,
		Order:       it.Order,
		Description: it.Description,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
