package handlers

import (
	"context"
	"net/http"
	"testing"

	"fundacoes_backoffice/internal/adapter/http/handlers/mocks"
	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newClientRouter(t *testing.T) (*gin.Engine, *mocks.MockIClientUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIClientUseCase(ctrl)
	h := NewClientHandler(uc)

	r := gin.New()
	r.POST("/v1/clients", h.Create)
	r.GET("/v1/clients", h.List)
	r.GET("/v1/clients/:id", h.Get)
	return r, uc
}

func TestClientHandler(t *testing.T) {
	t.Run("create trims fields", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Client) (entities.Client, error) {
			if c.Name != "Construtora Alfa" || len(c.Addresses) != 1 || c.Addresses[0].City != "Campinas" {
				t.Fatalf("unexpected client: %+v", c)
			}
			c.ID = "c-1"
			return c, nil
		})

		w := doJSON(r, http.MethodPost, "/v1/clients", `{"name":"  Construtora Alfa ","addresses":[{"street":"Rua B","city":" Campinas "}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("create validation issues", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{}, &usecase.ValidationError{Issues: map[string]string{"name": "obrigatório"}})

		w := doJSON(r, http.MethodPost, "/v1/clients", `{"name":""}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Issues["name"] != "obrigatório" {
			t.Fatalf("expected name issue, got %+v", body)
		}
	})

	t.Run("get unknown client", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "c-9").Return(entities.Client{}, usecase.ErrClientNotFound)

		w := doJSON(r, http.MethodGet, "/v1/clients/c-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().List(gomock.Any()).Return([]entities.Client{{ID: "c-1"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/clients", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
