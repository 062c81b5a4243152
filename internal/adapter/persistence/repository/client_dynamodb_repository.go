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

type clientAddressItem struct {
	Label        string   `dynamodbav:"label,omitempty"`
	Street       string   `dynamodbav:"street"`
	Number       string   `dynamodbav:"number,omitempty"`
	Neighborhood string   `dynamodbav:"neighborhood,omitempty"`
	City         string   `dynamodbav:"city"`
	State        string   `dynamodbav:"state,omitempty"`
	Zip          string   `dynamodbav:"zip,omitempty"`
	Latitude     *float64 `dynamodbav:"latitude,omitempty"`
	Longitude    *float64 `dynamodbav:"longitude,omitempty"`
}

type clientItem struct {
	ID        string              `dynamodbav:"id"`
	Name      string              `dynamodbav:"name"`
	Document  string              `dynamodbav:"document,omitempty"`
	Phone     string              `dynamodbav:"phone,omitempty"`
	Email     string              `dynamodbav:"email,omitempty"`
	Addresses []clientAddressItem `dynamodbav:"addresses"`
	CreatedAt string              `dynamodbav:"created_at"`
	UpdatedAt string              `dynamodbav:"updated_at"`
}

// ClientDynamoRepository persists clients and their saved addresses.
type ClientDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb DynamoDBAPI, tableName string) *ClientDynamoRepository {
	return &ClientDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(c))
	if err != nil {
		return entities.Client{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.Client{}, interfaces.ErrConditionFailed
		}
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	it, found, err := getItem[clientItem](ctx, r.ddb, r.tableName, idKey(id))
	if err != nil || !found {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) List(ctx context.Context) ([]entities.Client, error) {
	items, err := scanAll[clientItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	clients := make([]entities.Client, 0, len(items))
	for _, it := range items {
		clients = append(clients, fromClientItem(it))
	}
	sort.SliceStable(clients, func(i, j int) bool { return clients[i].Name < clients[j].Name })
	return clients, nil
}

func toClientItem(c entities.Client) clientItem {
	addresses := make([]clientAddressItem, 0, len(c.Addresses))
	for _, a := range c.Addresses {
		addresses = append(addresses, clientAddressItem(a))
	}
	return clientItem{
		ID:        c.ID,
		Name:      c.Name,
		Document:  c.Document,
		Phone:     c.Phone,
		Email:     c.Email,
		Addresses: addresses,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromClientItem(it clientItem) entities.Client {
	addresses := make([]entities.ClientAddress, 0, len(it.Addresses))
	for _, a := range it.Addresses {
		addresses = append(addresses, entities.ClientAddress(a))
	}
	return entities.Client{
		ID:        it.ID,
		Name:      it.Name,
		Document:  it.Document,
		Phone:     it.Phone,
		Email:     it.Email,
		Addresses: addresses,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
