package interfaces

import (
	"context"
	"fundacoes_backoffice/internal/domain/entities"
)

// IJobEventPublisher broadcasts job lifecycle events. Publishing is best
// effort: callers log failures and carry on.
type IJobEventPublisher interface {
	Publish(ctx context.Context, event entities.JobEvent) error
}
