package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fundacoes_backoffice/internal/adapter/http/handlers/mocks"
	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/infrastructure/observability"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (*gin.Engine, UseCases, *observability.Metrics) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := UseCases{
		Distance:      mocks.NewMockIDistanceUseCase(ctrl),
		TravelPricing: mocks.NewMockITravelPricingUseCase(ctrl),
		Settings:      mocks.NewMockISettingsUseCase(ctrl),
		Clients:       mocks.NewMockIClientUseCase(ctrl),
		Teams:         mocks.NewMockITeamUseCase(ctrl),
		Budgets:       mocks.NewMockIBudgetUseCase(ctrl),
		Jobs:          mocks.NewMockIJobUseCase(ctrl),
		CashRegister:  mocks.NewMockICashRegisterUseCase(ctrl),
		FieldAuth:     mocks.NewMockIFieldAuthUseCase(ctrl),
	}
	metrics := observability.NewMetrics()
	return NewRouter(uc, time.UTC, metrics, zap.NewNop()), uc, metrics
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	t.Run("ping", func(t *testing.T) {
		r, _, _ := newTestRouter(t)

		w := serve(r, http.MethodGet, "/v1/ping")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pong") {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("metrics exposes http counters", func(t *testing.T) {
		r, _, _ := newTestRouter(t)
		serve(r, http.MethodGet, "/v1/ping")

		w := serve(r, http.MethodGet, "/metrics")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `backoffice_http_requests_total{method="GET",route="/v1/ping",status="200"} 1`) {
			t.Fatalf("ping not counted:\n%s", w.Body.String())
		}
	})

	t.Run("field routes require a token", func(t *testing.T) {
		r, _, _ := newTestRouter(t)

		for _, path := range []string{"/v1/field/jobs", "/v1/field/jobs/j-1/start"} {
			method := http.MethodPost
			if path == "/v1/field/jobs" {
				method = http.MethodGet
			}
			if w := serve(r, method, path); w.Code != http.StatusUnauthorized {
				t.Fatalf("%s: expected 401, got %d", path, w.Code)
			}
		}
	})

	t.Run("back office routes are wired", func(t *testing.T) {
		r, uc, _ := newTestRouter(t)
		uc.Budgets.(*mocks.MockIBudgetUseCase).EXPECT().List(gomock.Any()).Return([]entities.Budget{}, nil)
		uc.Jobs.(*mocks.MockIJobUseCase).EXPECT().List(gomock.Any()).Return([]entities.Job{}, nil)
		uc.CashRegister.(*mocks.MockICashRegisterUseCase).EXPECT().List(gomock.Any()).Return(nil, nil)

		for _, path := range []string{"/v1/budgets", "/v1/jobs", "/v1/cash-transactions"} {
			if w := serve(r, http.MethodGet, path); w.Code != http.StatusOK {
				t.Fatalf("%s: expected 200, got %d", path, w.Code)
			}
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		r, _, _ := newTestRouter(t)

		if w := serve(r, http.MethodGet, "/v1/estimates"); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
