package repository

import (
	"context"

	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type settingsItem struct {
	ID                  string `dynamodbav:"id"`
	HeadquartersAddress string `dynamodbav:"headquarters_address"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// SettingsDynamoRepository keeps the company settings as a single item.
type SettingsDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb DynamoDBAPI, tableName string) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{ddb: ddb, tableName: tableName}
}

// Get returns zero settings when nothing was saved yet.
func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.Settings, error) {
	it, found, err := getItem[settingsItem](ctx, r.ddb, r.tableName, idKey(settingsDocumentKey))
	if err != nil || !found {
		return entities.Settings{}, err
	}
	return entities.Settings{
		HeadquartersAddress: it.HeadquartersAddress,
		UpdatedAt:           parseTime(it.UpdatedAt),
	}, nil
}

func (r *SettingsDynamoRepository) Save(ctx context.Context, s entities.Settings) (entities.Settings, error) {
	av, err := attributevalue.MarshalMap(settingsItem{
		ID:                  settingsDocumentKey,
		HeadquartersAddress: s.HeadquartersAddress,
		UpdatedAt:           formatTime(s.UpdatedAt),
	})
	if err != nil {
		return entities.Settings{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.Settings{}, err
	}
	return s, nil
}
