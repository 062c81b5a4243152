package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

// Tables holds the DynamoDB table names.
//
// Table requirements:
//   - every table: PK id (string), except Counters (PK name)
//   - Jobs: GSI team_id-index (PK team_id)
//   - Teams: GSI name-index (PK name)
//   - CashTransactions: GSI job_id-index (PK job_id)
type Tables struct {
	TravelPricingRules string
	Settings           string
	Budgets            string
	Jobs               string
	Teams              string
	Clients            string
	Counters           string
	CashTransactions   string
}

func DefaultTables() Tables {
	return Tables{
		TravelPricingRules: "travel_pricing_rules",
		Settings:           "settings",
		Budgets:            "budgets",
		Jobs:               "jobs",
		Teams:              "teams",
		Clients:            "clients",
		Counters:           "counters",
		CashTransactions:   "cash_transactions",
	}
}

const (
	jobsTeamIDIndex     = "team_id-index"
	teamsNameIndex      = "name-index"
	cashJobIDIndex      = "job_id-index"
	settingsDocumentKey = "global"
)

// TableSpec describes one table for the bootstrap command: its hash key and
// its global secondary indexes (index name -> hash key attribute).
type TableSpec struct {
	Name    string
	HashKey string
	Indexes map[string]string
}

func (t Tables) Specs() []TableSpec {
	return []TableSpec{
		{Name: t.TravelPricingRules, HashKey: "id"},
		{Name: t.Settings, HashKey: "id"},
		{Name: t.Budgets, HashKey: "id"},
		{Name: t.Jobs, HashKey: "id", Indexes: map[string]string{jobsTeamIDIndex: "team_id"}},
		{Name: t.Teams, HashKey: "id", Indexes: map[string]string{teamsNameIndex: "name"}},
		{Name: t.Clients, HashKey: "id"},
		{Name: t.Counters, HashKey: "name"},
		{Name: t.CashTransactions, HashKey: "id", Indexes: map[string]string{cashJobIDIndex: "job_id"}},
	}
}
