package database

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"fundacoes_backoffice/internal/adapter/persistence/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const tableReadyTimeout = 2 * time.Minute

// TableAdminAPI is the subset of *dynamodb.Client used to bootstrap tables.
type TableAdminAPI interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

var _ TableAdminAPI = (*dynamodb.Client)(nil)

// CreateTables creates every missing table (on-demand billing) and waits for
// it to become ACTIVE. Existing tables are left untouched.
func CreateTables(ctx context.Context, api TableAdminAPI, specs []repository.TableSpec, logger *zap.Logger) error {
	waiter := dynamodb.NewTableExistsWaiter(api)
	for _, spec := range specs {
		_, err := api.CreateTable(ctx, createTableInput(spec))
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				logger.Info("[dynamodb][bootstrap] table already exists", zap.String("table", spec.Name))
				continue
			}
			return fmt.Errorf("create table %s: %w", spec.Name, err)
		}

		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)}, tableReadyTimeout); err != nil {
			return fmt.Errorf("wait table %s: %w", spec.Name, err)
		}
		logger.Info("[dynamodb][bootstrap] table created", zap.String("table", spec.Name), zap.Int("indexes", len(spec.Indexes)))
	}
	return nil
}

func createTableInput(spec repository.TableSpec) *dynamodb.CreateTableInput {
	attrs := map[string]struct{}{spec.HashKey: {}}

	indexNames := make([]string, 0, len(spec.Indexes))
	for name := range spec.Indexes {
		indexNames = append(indexNames, name)
	}
	sort.Strings(indexNames)

	var gsis []types.GlobalSecondaryIndex
	for _, name := range indexNames {
		key := spec.Indexes[name]
		attrs[key] = struct{}{}
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(name),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String(key), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	attrNames := make([]string, 0, len(attrs))
	for name := range attrs {
		attrNames = append(attrNames, name)
	}
	sort.Strings(attrNames)
	defs := make([]types.AttributeDefinition, 0, len(attrNames))
	for _, name := range attrNames {
		defs = append(defs, types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS})
	}

	return &dynamodb.CreateTableInput{
		TableName:              aws.String(spec.Name),
		BillingMode:            types.BillingModePayPerRequest,
		AttributeDefinitions:   defs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String(spec.HashKey), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: gsis,
	}
}
