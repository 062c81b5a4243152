package usecase

import (
	"context"
	"errors"
	"testing"

	"fundacoes_backoffice/internal/domain/entities"
	mock_interfaces "fundacoes_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestSettingsUseCase_UpdateHeadquartersAddress(t *testing.T) {
	t.Run("empty address", func(t *testing.T) {
		uc := NewSettingsUseCase(nil, zap.NewNop())
		if _, err := uc.UpdateHeadquartersAddress(context.Background(), "  "); !errors.Is(err, ErrInvalidHeadquartersAddress) {
			t.Fatalf("expected ErrInvalidHeadquartersAddress, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo, zap.NewNop())

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Settings) (entities.Settings, error) {
				if s.HeadquartersAddress != "Av. Central, 100" || s.UpdatedAt.IsZero() {
					t.Fatalf("unexpected settings: %+v", s)
				}
				return s, nil
			},
		)
		if _, err := uc.UpdateHeadquartersAddress(context.Background(), " Av. Central, 100 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
