package repository

import (
	"context"
	"sort"

	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type teamItem struct {
	ID                string `dynamodbav:"id"`
	Name              string `dynamodbav:"name"`
	OperationPassHash string `dynamodbav:"operation_pass_hash,omitempty"`
	OperationToken    string `dynamodbav:"operation_token,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// TeamDynamoRepository persists field crews in DynamoDB.
type TeamDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ITeamRepository = (*TeamDynamoRepository)(nil)

func NewTeamDynamoRepository(ddb DynamoDBAPI, tableName string) *TeamDynamoRepository {
	return &TeamDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TeamDynamoRepository) Create(ctx context.Context, t entities.Team) (entities.Team, error) {
	av, err := attributevalue.MarshalMap(toTeamItem(t))
	if err != nil {
		return entities.Team{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.Team{}, interfaces.ErrConditionFailed
		}
		return entities.Team{}, err
	}
	return t, nil
}

func (r *TeamDynamoRepository) GetByID(ctx context.Context, id string) (entities.Team, error) {
	it, found, err := getItem[teamItem](ctx, r.ddb, r.tableName, idKey(id))
	if err != nil || !found {
		return entities.Team{}, err
	}
	return fromTeamItem(it), nil
}

// GetByName queries the name index. Names match exactly.
func (r *TeamDynamoRepository) GetByName(ctx context.Context, name string) (entities.Team, error) {
	items, err := queryIndex[teamItem](ctx, r.ddb, r.tableName, teamsNameIndex, "name", name)
	if err != nil || len(items) == 0 {
		return entities.Team{}, err
	}
	return fromTeamItem(items[0]), nil
}

func (r *TeamDynamoRepository) List(ctx context.Context) ([]entities.Team, error) {
	items, err := scanAll[teamItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	teams := make([]entities.Team, 0, len(items))
	for _, it := range items {
		teams = append(teams, fromTeamItem(it))
	}
	sort.SliceStable(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams, nil
}

func toTeamItem(t entities.Team) teamItem {
	return teamItem{
		ID:                t.ID,
		Name:              t.Name,
		OperationPassHash: t.OperationPassHash,
		OperationToken:    t.OperationToken,
		CreatedAt:         formatTime(t.CreatedAt),
		UpdatedAt:         formatTime(t.UpdatedAt),
	}
}

func fromTeamItem(it teamItem) entities.Team {
	return entities.Team{
		ID:                it.ID,
		Name:              it.Name,
		OperationPassHash: it.OperationPassHash,
		OperationToken:    it.OperationToken,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
