package handlers

import (
	"net/http"
	"testing"

	"fundacoes_backoffice/internal/adapter/http/handlers/mocks"
	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newJobRouter(t *testing.T) (*gin.Engine, *mocks.MockIJobUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIJobUseCase(ctrl)
	h := NewJobHandler(uc)

	r := gin.New()
	r.GET("/v1/jobs", h.List)
	r.GET("/v1/jobs/:id", h.Get)
	return r, uc
}

func TestJobHandler(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1", Title: "Construtora Alfa - Estaca - 000001"}, nil)

		w := doJSON(r, http.MethodGet, "/v1/jobs/j-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get unknown job", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "j-9").Return(entities.Job{}, usecase.ErrJobNotFound)

		w := doJSON(r, http.MethodGet, "/v1/jobs/j-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().List(gomock.Any()).Return([]entities.Job{{ID: "j-1"}, {ID: "j-2"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/jobs", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
