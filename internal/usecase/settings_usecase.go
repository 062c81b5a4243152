package usecase

import (
	"context"
	"errors"
	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase/interfaces"
	"strings"
	"time"

	"go.uber.org/zap"
)

var ErrInvalidHeadquartersAddress = errors.New("invalid headquarters address")

type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.Settings, error)
	UpdateHeadquartersAddress(ctx context.Context, address string) (entities.Settings, error)
}

type SettingsUseCase struct {
	repo   interfaces.ISettingsRepository
	logger *zap.Logger
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository, logger *zap.Logger) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, logger: logger.Named("settings")}
}

func (u *SettingsUseCase) Get(ctx context.Context) (entities.Settings, error) {
	return u.repo.Get(ctx)
}

func (u *SettingsUseCase) UpdateHeadquartersAddress(ctx context.Context, address string) (entities.Settings, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return entities.Settings{}, ErrInvalidHeadquartersAddress
	}

	s, err := u.repo.Save(ctx, entities.Settings{HeadquartersAddress: address, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return entities.Settings{}, err
	}
	u.logger.Info("[settings][usecase] headquarters address updated")
	return s, nil
}
