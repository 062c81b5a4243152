package interfaces

import (
	"context"
	"fundacoes_backoffice/internal/domain/entities"
)

// ICashTransactionRepository persists cash register entries.
//
// Create rejects a second entrada for the same job with ErrConditionFailed.
type ICashTransactionRepository interface {
	Create(ctx context.Context, tx entities.CashTransaction) (entities.CashTransaction, error)
	List(ctx context.Context) ([]entities.CashTransaction, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.CashTransaction, error)
}
