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

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		writeError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, response.Data(settings))
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var payload request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	settings, err := h.usecase.UpdateHeadquartersAddress(c.Request.Context(), payload.HeadquartersAddress)
	if err != nil {
		writeError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, response.Data(settings))
}

func mapSettingsError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidHeadquartersAddress) {
		return validationIssue("headquartersAddress", "required")
	}
	return internalError(err)
}
