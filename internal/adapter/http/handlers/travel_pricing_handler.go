package handlers

import (
	"errors"
	"net/http"

	request "fundacoes_backoffice/internal/adapter/http/dto/request"
	response "fundacoes_backoffice/internal/adapter/http/dto/response"
	"fundacoes_backoffice/internal/usecase"
	"fundacoes_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

type TravelPricingHandler struct {
	usecase usecase.ITravelPricingUseCase
}

func NewTravelPricingHandler(uc usecase.ITravelPricingUseCase) *TravelPricingHandler {
	return &TravelPricingHandler{usecase: uc}
}

func (h *TravelPricingHandler) List(c *gin.Context) {
	rules, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapTravelPricingError(err))
		return
	}
	c.JSON(http.StatusOK, response.Data(response.NonNil(rules)))
}

func (h *TravelPricingHandler) Create(c *gin.Context) {
	var payload request.TravelPricingRuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	rule, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapTravelPricingError(err))
		return
	}
	c.JSON(http.StatusCreated, response.Data(rule))
}

func (h *TravelPricingHandler) Update(c *gin.Context) {
	var payload request.TravelPricingRuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	rule, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapTravelPricingError(err))
		return
	}
	c.JSON(http.StatusOK, response.Data(rule))
}

func (h *TravelPricingHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapTravelPricingError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapTravelPricingError(err error) *pkg.AppError {
	if appErr, ok := asValidationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidTravelRuleID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTravelRuleNotFound):
		return pkg.NewDomainErrorSimple("TRAVEL_RULE_NOT_FOUND", "Travel pricing rule not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
