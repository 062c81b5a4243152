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

func newTravelPricingRouter(t *testing.T) (*gin.Engine, *mocks.MockITravelPricingUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockITravelPricingUseCase(ctrl)
	h := NewTravelPricingHandler(uc)

	r := gin.New()
	r.GET("/v1/travel-pricing", h.List)
	r.POST("/v1/travel-pricing", h.Create)
	r.PUT("/v1/travel-pricing/:id", h.Update)
	r.DELETE("/v1/travel-pricing/:id", h.Delete)
	return r, uc
}

func TestTravelPricingHandler_Create(t *testing.T) {
	t.Run("validation issues", func(t *testing.T) {
		r, uc := newTravelPricingRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.TravelPricingRule{}, &usecase.ValidationError{Issues: map[string]string{"pricePerKm": "must be positive"}})

		w := doJSON(r, http.MethodPost, "/v1/travel-pricing", `{"type":"per_km"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Issues["pricePerKm"] == "" {
			t.Fatalf("expected pricePerKm issue, got %+v", body)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		r, _ := newTravelPricingRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/travel-pricing", `{"type":"FIXED","fixedPrice":150}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Issues["type"] != "must be one of: per_km, fixed" {
			t.Fatalf("expected type issue, got %+v", body)
		}
	})

	t.Run("maps payload", func(t *testing.T) {
		r, uc := newTravelPricingRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.TravelPricingRuleInput) (entities.TravelPricingRule, error) {
			if in.Type != entities.TravelPricingFixed || in.FixedPrice == nil || *in.FixedPrice != 150 {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.UpToKm == nil || *in.UpToKm != 30 {
				t.Fatalf("expected upToKm 30, got %v", in.UpToKm)
			}
			return entities.TravelPricingRule{ID: "r-1", Type: in.Type, FixedPrice: *in.FixedPrice}, nil
		})

		w := doJSON(r, http.MethodPost, "/v1/travel-pricing", `{"type":"fixed","fixedPrice":150,"upToKm":30}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestTravelPricingHandler_UpdateDelete(t *testing.T) {
	t.Run("update unknown rule", func(t *testing.T) {
		r, uc := newTravelPricingRouter(t)
		uc.EXPECT().Update(gomock.Any(), "r-9", gomock.Any()).Return(entities.TravelPricingRule{}, usecase.ErrTravelRuleNotFound)

		w := doJSON(r, http.MethodPut, "/v1/travel-pricing/r-9", `{"type":"fixed","fixedPrice":100,"order":2}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := newTravelPricingRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "r-1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/travel-pricing/r-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		r, uc := newTravelPricingRouter(t)
		uc.EXPECT().List(gomock.Any()).Return([]entities.TravelPricingRule{{ID: "r-1"}, {ID: "r-2"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/travel-pricing", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
