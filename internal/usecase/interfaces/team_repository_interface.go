package interfaces

import (
	"context"
	"fundacoes_backoffice/internal/domain/entities"
)

type ITeamRepository interface {
	Create(ctx context.Context, t entities.Team) (entities.Team, error)
	GetByID(ctx context.Context, id string) (entities.Team, error)
	GetByName(ctx context.Context, name string) (entities.Team, error)
	List(ctx context.Context) ([]entities.Team, error)
}
