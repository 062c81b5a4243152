package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fundacoes_backoffice/internal/domain/entities"
	mock_interfaces "fundacoes_backoffice/internal/usecase/interfaces/mocks"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestFieldAuthUseCase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	team := entities.Team{ID: "team-1", Name: "Equipe Azul", OperationPassHash: string(hash)}

	t.Run("missing credentials", func(t *testing.T) {
		uc := NewFieldAuthUseCase(nil, "secret", time.Hour, zap.NewNop())
		if _, err := uc.Login(context.Background(), "", "", "x"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITeamRepository(ctrl)
		uc := NewFieldAuthUseCase(repo, "secret", time.Hour, zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "team-1").Return(team, nil)
		if _, err := uc.Login(context.Background(), "team-1", "", "errada"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown team", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITeamRepository(ctrl)
		uc := NewFieldAuthUseCase(repo, "secret", time.Hour, zap.NewNop())

		repo.EXPECT().GetByName(gomock.Any(), "Equipe Verde").Return(entities.Team{}, nil)
		if _, err := uc.Login(context.Background(), "", "Equipe Verde", "s3nha"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("legacy token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITeamRepository(ctrl)
		uc := NewFieldAuthUseCase(repo, "secret", time.Hour, zap.NewNop())

		repo.EXPECT().GetByName(gomock.Any(), "Equipe Velha").Return(entities.Team{ID: "team-9", Name: "Equipe Velha", OperationToken: "1234"}, nil)
		if _, err := uc.Login(context.Background(), "", "Equipe Velha", "1234"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("token round trip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITeamRepository(ctrl)
		uc := NewFieldAuthUseCase(repo, "secret", time.Hour, zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "team-1").Return(team, nil)
		session, err := uc.Login(context.Background(), "team-1", "", "s3nha")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		claims, err := uc.ValidateToken(session.Token)
		if err != nil {
			t.Fatalf("unexpected validation error: %v", err)
		}
		if claims.Subject != "team-1" || claims.TeamName != "Equipe Azul" {
			t.Fatalf("unexpected claims: %+v", claims)
		}

		other := NewFieldAuthUseCase(nil, "other-secret", time.Hour, zap.NewNop())
		if _, err := other.ValidateToken(session.Token); !errors.Is(err, ErrInvalidFieldToken) {
			t.Fatalf("expected ErrInvalidFieldToken with another secret, got %v", err)
		}
	})
}

func TestFieldAuthUseCase_ValidateToken(t *testing.T) {
	uc := NewFieldAuthUseCase(nil, "secret", time.Hour, zap.NewNop())

	sign := func(c FieldClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("secret"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return s
	}

	t.Run("expired", func(t *testing.T) {
		tok := sign(FieldClaims{Type: "field", RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "team-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}})
		if _, err := uc.ValidateToken(tok); !errors.Is(err, ErrInvalidFieldToken) {
			t.Fatalf("expected ErrInvalidFieldToken, got %v", err)
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		tok := sign(FieldClaims{Type: "access", RegisteredClaims: jwt.RegisteredClaims{Subject: "team-1"}})
		if _, err := uc.ValidateToken(tok); !errors.Is(err, ErrInvalidFieldToken) {
			t.Fatalf("expected ErrInvalidFieldToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := uc.ValidateToken("not-a-token"); !errors.Is(err, ErrInvalidFieldToken) {
			t.Fatalf("expected ErrInvalidFieldToken, got %v", err)
		}
	})
}
