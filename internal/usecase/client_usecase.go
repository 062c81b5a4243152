package usecase

import (
	"context"
	"errors"
	"fmt"
	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrInvalidClientID = errors.New("invalid client id")
)

type IClientUseCase interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}

type ClientUseCase struct {
	repo   interfaces.IClientRepository
	logger *zap.Logger
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, logger *zap.Logger) *ClientUseCase {
	return &ClientUseCase{repo: repo, logger: logger.Named("client")}
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	iss := issues{}
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		iss.add("name", "obrigatório")
	}
	for i, a := range c.Addresses {
		if strings.TrimSpace(a.Street) == "" {
			iss.add(fmt.Sprintf("addresses[%d].street", i), "obrigatório")
		}
		if strings.TrimSpace(a.City) == "" {
			iss.add(fmt.Sprintf("addresses[%d].city", i), "obrigatório")
		}
		if (a.Latitude == nil) != (a.Longitude == nil) {
			iss.add(fmt.Sprintf("addresses[%d]", i), "informe latitude e longitude juntas")
		}
	}
	if err := iss.err(); err != nil {
		return entities.Client{}, err
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Addresses == nil {
		c.Addresses = []entities.ClientAddress{}
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	u.logger.Info("[client][usecase] client created", zap.String("client_id", created.ID), zap.Int("addresses", len(created.Addresses)))
	return created, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}
