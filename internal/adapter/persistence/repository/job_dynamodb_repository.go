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

type serviceItem struct {
	Description string  `dynamodbav:"description"`
	Quantity    float64 `dynamodbav:"quantity"`
	Price       float64 `dynamodbav:"price"`
	Discount    float64 `dynamodbav:"discount"`
	FinalValue  float64 `dynamodbav:"final_value"`
}

type jobItem struct {
	ID                string        `dynamodbav:"id"`
	Seq               int64         `dynamodbav:"seq"`
	Title             string        `dynamodbav:"title"`
	BudgetID          string        `dynamodbav:"budget_id,omitempty"`
	ClientID          string        `dynamodbav:"client_id"`
	ClientName        string        `dynamodbav:"client_name"`
	Site              string        `dynamodbav:"site"`
	SiteLatitude      *float64      `dynamodbav:"site_latitude,omitempty"`
	SiteLongitude     *float64      `dynamodbav:"site_longitude,omitempty"`
	Team              string        `dynamodbav:"team"`
	TeamID            string        `dynamodbav:"team_id"`
	Status            string        `dynamodbav:"status"`
	PlannedDate       string        `dynamodbav:"planned_date"`
	Notes             string        `dynamodbav:"notes,omitempty"`
	Services          []serviceItem `dynamodbav:"services"`
	Value             float64       `dynamodbav:"value"`
	DiscountPercent   float64       `dynamodbav:"discount_percent"`
	DiscountValue     float64       `dynamodbav:"discount_value"`
	FinalValue        float64       `dynamodbav:"final_value"`
	TravelDistanceKm  float64       `dynamodbav:"travel_distance_km"`
	TravelPrice       float64       `dynamodbav:"travel_price"`
	TravelDescription string        `dynamodbav:"travel_description"`
	StartedAt         string        `dynamodbav:"started_at,omitempty"`
	FinishedAt        string        `dynamodbav:"finished_at,omitempty"`
	CancelReason      string        `dynamodbav:"cancel_reason,omitempty"`
	CreatedAt         string        `dynamodbav:"created_at"`
	UpdatedAt         string        `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Jobs are only inserted by BudgetDynamoRepository.ConvertBudget; this
// repository reads them and applies status changes.
type JobDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb DynamoDBAPI, tableName string) *JobDynamoRepository {
	return &JobDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	it, found, err := getItem[jobItem](ctx, r.ddb, r.tableName, idKey(id))
	if err != nil || !found {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) List(ctx context.Context) ([]entities.Job, error) {
	items, err := scanAll[jobItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	jobs := fromJobItems(items)
	sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].Seq > jobs[j].Seq })
	return jobs, nil
}

func (r *JobDynamoRepository) ListByTeamID(ctx context.Context, teamID string) ([]entities.Job, error) {
	items, err := queryIndex[jobItem](ctx, r.ddb, r.tableName, jobsTeamIDIndex, "team_id", teamID)
	if err != nil {
		return nil, err
	}
	jobs := fromJobItems(items)
	sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].PlannedDate.Before(jobs[j].PlannedDate) })
	return jobs, nil
}

// Save replaces the job only while its stored status still equals expected.
func (r *JobDynamoRepository) Save(ctx context.Context, job entities.Job, expected entities.JobStatus) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(job))
	if err != nil {
		return entities.Job{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(expected)},
		},
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.Job{}, interfaces.ErrConditionFailed
		}
		return entities.Job{}, err
	}
	return job, nil
}

func toServiceItems(services []entities.ServiceItem) []serviceItem {
	out := make([]serviceItem, 0, len(services))
	for _, s := range services {
		out = append(out, serviceItem{
			Description: s.Description,
			Quantity:    s.Quantity,
			Price:       s.Price,
			Discount:    s.Discount,
			FinalValue:  s.FinalValue,
		})
	}
	return out
}

func fromServiceItems(items []serviceItem) []entities.ServiceItem {
	out := make([]entities.ServiceItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.ServiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Discount:    it.Discount,
			FinalValue:  it.FinalValue,
		})
	}
	return out
}

func toJobItem(j entities.Job) jobItem {
	return jobItem{
		ID:                j.ID,
		Seq:               j.Seq,
		Title:             j.Title,
		BudgetID:          j.BudgetID,
		ClientID:          j.ClientID,
		ClientName:        j.ClientName,
		Site:              j.Site,
		SiteLatitude:      j.SiteLatitude,
		SiteLongitude:     j.SiteLongitude,
		Team:              j.Team,
		TeamID:            j.TeamID,
		Status:            string(j.Status),
		PlannedDate:       formatTime(j.PlannedDate),
		Notes:             j.Notes,
		Services:          toServiceItems(j.Services),
		Value:             j.Value,
		DiscountPercent:   j.DiscountPercent,
		DiscountValue:     j.DiscountValue,
		FinalValue:        j.FinalValue,
		TravelDistanceKm:  j.TravelDistanceKm,
		TravelPrice:       j.TravelPrice,
		TravelDescription: j.TravelDescription,
		StartedAt:         formatTimePtr(j.StartedAt),
		FinishedAt:        formatTimePtr(j.FinishedAt),
		CancelReason:      j.CancelReason,
		CreatedAt:         formatTime(j.CreatedAt),
		UpdatedAt:         formatTime(j.UpdatedAt),
	}
}

func fromJobItem(it jobItem) entities.Job {
	return entities.Job{
		ID:                it.ID,
		Seq:               it.Seq,
		Title:             it.Title,
		BudgetID:          it.BudgetID,
		ClientID:          it.ClientID,
		ClientName:        it.ClientName,
		Site:              it.Site,
		SiteLatitude:      it.SiteLatitude,
		SiteLongitude:     it.SiteLongitude,
		Team:              it.Team,
		TeamID:            it.TeamID,
		Status:            entities.JobStatus(it.Status),
		PlannedDate:       parseTime(it.PlannedDate),
		Notes:             it.Notes,
		Services:          fromServiceItems(it.Services),
		Value:             it.Value,
		DiscountPercent:   it.DiscountPercent,
		DiscountValue:     it.DiscountValue,
		FinalValue:        it.FinalValue,
		TravelDistanceKm:  it.TravelDistanceKm,
		TravelPrice:       it.TravelPrice,
		TravelDescription: it.TravelDescription,
		StartedAt:         parseTimePtr(it.StartedAt),
		FinishedAt:        parseTimePtr(it.FinishedAt),
		CancelReason:      it.CancelReason,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}

func fromJobItems(items []jobItem) []entities.Job {
	jobs := make([]entities.Job, 0, len(items))
	for _, it := range items {
		jobs = append(jobs, fromJobItem(it))
	}
	return jobs
}
