package interfaces

import (
	"context"
	"fundacoes_backoffice/internal/domain/entities"
)

// IJobRepository abstracts persistence for Job.
//
// Jobs are created only through IBudgetRepository.ConvertBudget. Save replaces
// the job when its stored status still equals expected.
type IJobRepository interface {
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context) ([]entities.Job, error)
	ListByTeamID(ctx context.Context, teamID string) ([]entities.Job, error)
	Save(ctx context.Context, job entities.Job, expected entities.JobStatus) (entities.Job, error)
}
