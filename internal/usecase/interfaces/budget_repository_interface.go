package interfaces

import (
	"context"
	"fundacoes_backoffice/internal/domain/entities"
)

// IBudgetRepository abstracts persistence for Budget.
//
// The back office must be able to:
//   - create and list budgets
//   - approve/reject a budget that was not converted yet
//   - refresh the travel snapshot of a budget
//   - delete a budget that never produced a Job
//   - convert a budget into a Job as a single atomic write
//
// Conditional writes that lose against the stored state return ErrConditionFailed.
// ConvertBudget returns ErrNotFound when the budget no longer exists.
type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context) ([]entities.Budget, error)
	UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error)
	UpdateTravel(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Delete(ctx context.Context, id string) error
	ConvertBudget(ctx context.Context, job entities.Job, budgetID string) (entities.Budget, error)
}
