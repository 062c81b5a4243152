package handlers

import (
	"errors"
	"net/http"

	request "fundacoes_backoffice/internal/adapter/http/dto/request"
	response "fundacoes_backoffice/internal/adapter/http/dto/response"
	"fundacoes_backoffice/internal/infrastructure/observability"
	"fundacoes_backoffice/internal/usecase"
	"fundacoes_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DistanceHandler quotes the travel fee from the company headquarters to a
// client address and reverse geocodes coordinates picked on the map.
type DistanceHandler struct {
	usecase usecase.IDistanceUseCase
	metrics *observability.Metrics
	logger  *zap.Logger
}

func NewDistanceHandler(uc usecase.IDistanceUseCase, metrics *observability.Metrics, logger *zap.Logger) *DistanceHandler {
	return &DistanceHandler{usecase: uc, metrics: metrics, logger: logger.Named("distance")}
}

// Calculate answers POST /distance/calculate. Every call reaches the maps provider.
func (h *DistanceHandler) Calculate(c *gin.Context) {
	var payload request.CalculateDistanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	quote, err := h.usecase.Calculate(c.Request.Context(), payload.ClientAddress)
	if err != nil {
		h.metrics.IncrDistanceQuote("error")
		h.logger.Info("[distance][handler] calculate failed", zap.Error(err))
		writeError(c, mapDistanceError(err))
		return
	}
	h.metrics.IncrDistanceQuote("ok")

	c.JSON(http.StatusOK, response.Data(quote))
}

func (h *DistanceHandler) Geocode(c *gin.Context) {
	var payload request.GeocodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	addr, err := h.usecase.Geocode(c.Request.Context(), *payload.Lat, *payload.Lng)
	if err != nil {
		h.logger.Info("[distance][handler] geocode failed", zap.Error(err))
		writeError(c, mapDistanceError(err))
		return
	}

	c.JSON(http.StatusOK, response.Data(addr))
}

func mapDistanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrClientAddressRequired):
		return validationIssue("clientAddress", "required")
	case errors.Is(err, usecase.ErrInvalidCoordinates):
		return pkg.NewValidationError("Invalid request", map[string]string{"lat": "must be between -90 and 90", "lng": "must be between -180 and 180"})
	case errors.Is(err, usecase.ErrCompanyAddressNotConfigured):
		return pkg.NewDomainErrorSimple("COMPANY_ADDRESS_NOT_CONFIGURED", "Company address not configured", http.StatusBadRequest).
			WithDetail("Configure o endereço da sede em /settings")
	case errors.Is(err, usecase.ErrDistanceProviderNotConfigured):
		return pkg.NewDomainErrorSimple("DISTANCE_PROVIDER_NOT_CONFIGURED", "Distance provider not configured", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrAddressNotFound):
		return pkg.NewDomainErrorSimple("ADDRESS_NOT_FOUND", "Address not found", http.StatusBadRequest).
			WithDetail(detailOf(err, usecase.ErrAddressNotFound))
	case errors.Is(err, usecase.ErrNoRouteFound):
		return pkg.NewDomainErrorSimple("NO_ROUTE_FOUND", "No route found between addresses", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDistanceUpstream):
		return pkg.NewDomainErrorSimple("DISTANCE_PROVIDER_ERROR", "Distance provider error", http.StatusBadRequest).
			WithDetail(detailOf(err, usecase.ErrDistanceUpstream))
	default:
		return internalError(err)
	}
}
