package usecase

import (
	"context"
	"errors"
	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minTeamPasswordLen = 4

var (
	ErrTeamAlreadyExists   = errors.New("team already exists")
	ErrInvalidTeamName     = errors.New("invalid team name")
	ErrInvalidTeamPassword = errors.New("invalid team password")
)

type ITeamUseCase interface {
	Create(ctx context.Context, name, password string) (entities.Team, error)
	List(ctx context.Context) ([]entities.Team, error)
}

type TeamUseCase struct {
	repo       interfaces.ITeamRepository
	bcryptCost int
	logger     *zap.Logger
}

var _ ITeamUseCase = (*TeamUseCase)(nil)

// NewTeamUseCase hashes field portal passwords with bcryptCost; values below
// bcrypt.MinCost fall back to bcrypt.DefaultCost.
func NewTeamUseCase(repo interfaces.ITeamRepository, bcryptCost int, logger *zap.Logger) *TeamUseCase {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &TeamUseCase{repo: repo, bcryptCost: bcryptCost, logger: logger.Named("team")}
}

func (u *TeamUseCase) Create(ctx context.Context, name, password string) (entities.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Team{}, ErrInvalidTeamName
	}
	if len(password) < minTeamPasswordLen {
		return entities.Team{}, ErrInvalidTeamPassword
	}

	existing, err := u.repo.GetByName(ctx, name)
	if err != nil {
		return entities.Team{}, err
	}
	if existing.ID != "" {
		return entities.Team{}, ErrTeamAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.bcryptCost)
	if err != nil {
		return entities.Team{}, err
	}

	now := time.Now().UTC()
	t := entities.Team{
		ID:                uuid.NewString(),
		Name:              name,
		OperationPassHash: string(hash),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	created, err := u.repo.Create(ctx, t)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Team{}, ErrTeamAlreadyExists
		}
		return entities.Team{}, err
	}
	u.logger.Info("[team][usecase] team created", zap.String("team_id", created.ID))
	return created, nil
}

func (u *TeamUseCase) List(ctx context.Context) ([]entities.Team, error) {
	return u.repo.List(ctx)
}
