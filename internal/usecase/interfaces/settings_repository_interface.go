package interfaces

import (
	"context"
	"fundacoes_backoffice/internal/domain/entities"
)

// ISettingsRepository stores the single company settings document.
type ISettingsRepository interface {
	Get(ctx context.Context) (entities.Settings, error)
	Save(ctx context.Context, s entities.Settings) (entities.Settings, error)
}
